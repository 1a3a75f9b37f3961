// README: PR-FAQ generator handler.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/prfaq"
	"voyage/internal/modules/usage"
)

type PRFAQHandler struct {
	prfaq *prfaq.Service
	usage usageGate
}

func NewPRFAQHandler(prfaqSvc *prfaq.Service, usageSvc usageGate) *PRFAQHandler {
	return &PRFAQHandler{prfaq: prfaqSvc, usage: usageSvc}
}

type prfaqReq struct {
	UID     string `json:"uid"`
	Product string `json:"product_description"`
}

// Generate handles POST /api/prfaq.
func (h *PRFAQHandler) Generate(c *gin.Context) {
	var req prfaqReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Product = strings.TrimSpace(req.Product)
	if req.Product == "" {
		writeError(c, http.StatusBadRequest, "missing product description")
		return
	}
	uid, ok := callerOrBodyUID(c, req.UID)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	// Anonymous callers are not metered.
	if uid != "" {
		if err := h.usage.Use(ctx, uid, usage.FeaturePRFAQ); err != nil {
			switch {
			case errors.Is(err, usage.ErrQuotaExhausted):
				writeError(c, http.StatusTooManyRequests, err.Error())
			default:
				writeError(c, http.StatusInternalServerError, "internal error")
			}
			return
		}
	}

	doc := h.prfaq.Generate(ctx, req.Product)
	writeJSON(c, http.StatusOK, doc)
}
