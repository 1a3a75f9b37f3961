// README: Research assistant handler (paper summaries, LinkedIn posts).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/research"
	"voyage/internal/modules/usage"
)

type ResearchHandler struct {
	research *research.Service
	usage    usageGate
}

func NewResearchHandler(researchSvc *research.Service, usageSvc usageGate) *ResearchHandler {
	return &ResearchHandler{research: researchSvc, usage: usageSvc}
}

type researchReq struct {
	UID string `json:"uid"`
	URL string `json:"url"`
}

func (h *ResearchHandler) bind(c *gin.Context) (researchReq, bool) {
	var req researchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return req, false
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		writeError(c, http.StatusBadRequest, "missing url")
		return req, false
	}
	uid, ok := callerOrBodyUID(c, req.UID)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return req, false
	}
	req.UID = uid
	if u, err := url.Parse(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		writeError(c, http.StatusBadRequest, "invalid url")
		return req, false
	}
	return req, true
}

func (h *ResearchHandler) gate(ctx context.Context, c *gin.Context, uid string) bool {
	// Anonymous callers are not metered.
	if uid == "" {
		return true
	}
	if err := h.usage.Use(ctx, uid, usage.FeatureResearch); err != nil {
		switch {
		case errors.Is(err, usage.ErrQuotaExhausted):
			writeError(c, http.StatusTooManyRequests, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return false
	}
	return true
}

// Summarize handles POST /api/research/summarize.
func (h *ResearchHandler) Summarize(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	if !h.gate(ctx, c, req.UID) {
		return
	}

	summary, err := h.research.Summarize(ctx, req.URL)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, summary)
}

// LinkedIn handles POST /api/research/linkedin.
func (h *ResearchHandler) LinkedIn(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	if !h.gate(ctx, c, req.UID) {
		return
	}

	post, err := h.research.LinkedInPost(ctx, req.URL)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"post": post})
}
