// README: Customer support handler.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"voyage/internal/modules/support"
	"voyage/internal/modules/usage"
)

// ticketGetter is implemented by support.Store.
type ticketGetter interface {
	Get(ctx context.Context, id string) (support.Ticket, error)
}

type SupportHandler struct {
	support *support.Service
	tickets ticketGetter
	usage   usageGate
}

func NewSupportHandler(supportSvc *support.Service, tickets ticketGetter, usageSvc usageGate) *SupportHandler {
	return &SupportHandler{support: supportSvc, tickets: tickets, usage: usageSvc}
}

type supportReq struct {
	UID     string `json:"uid"`
	Message string `json:"message"`
}

// Respond handles POST /api/support/respond.
func (h *SupportHandler) Respond(c *gin.Context) {
	var req supportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}
	uid, ok := callerOrBodyUID(c, req.UID)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	// Anonymous callers are not metered.
	if uid != "" {
		if err := h.usage.Use(ctx, uid, usage.FeatureSupport); err != nil {
			switch {
			case errors.Is(err, usage.ErrQuotaExhausted):
				writeError(c, http.StatusTooManyRequests, err.Error())
			default:
				writeError(c, http.StatusInternalServerError, "internal error")
			}
			return
		}
	}

	ticket, err := h.support.Respond(ctx, req.Message)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, ticket)
}

// GetTicket handles GET /api/support/tickets/:id.
func (h *SupportHandler) GetTicket(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if !isValidUID(id) {
		writeError(c, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	ticket, err := h.tickets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "ticket not found")
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, ticket)
}
