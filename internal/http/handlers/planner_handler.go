// README: Vacation planner handler (credit-guarded staged generation).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/planner"
	"voyage/internal/modules/usage"
)

// usageGate deducts one generation credit or refuses.
type usageGate interface {
	Use(ctx context.Context, uid, feature string) error
}

type PlannerHandler struct {
	planner *planner.Service
	usage   usageGate
}

func NewPlannerHandler(plannerSvc *planner.Service, usageSvc usageGate) *PlannerHandler {
	return &PlannerHandler{planner: plannerSvc, usage: usageSvc}
}

type planReq struct {
	UID     string `json:"uid"`
	Request string `json:"request"`
}

// Plan handles POST /api/vacations/plan.
func (h *PlannerHandler) Plan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Request = strings.TrimSpace(req.Request)
	if req.Request == "" {
		writeError(c, http.StatusBadRequest, "missing request")
		return
	}
	uid, ok := callerOrBodyUID(c, req.UID)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 120*time.Second)
	defer cancel()

	// Anonymous callers are not metered.
	if uid != "" {
		if err := h.usage.Use(ctx, uid, usage.FeaturePlanner); err != nil {
			switch {
			case errors.Is(err, usage.ErrQuotaExhausted):
				writeError(c, http.StatusTooManyRequests, err.Error())
			default:
				writeError(c, http.StatusInternalServerError, "internal error")
			}
			return
		}
	}

	result := h.planner.Plan(ctx, req.Request)
	writeJSON(c, http.StatusOK, result)
}
