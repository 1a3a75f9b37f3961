// README: Dining lookup handler backed by Google Places.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyage/internal/maps"
)

// diningSearcher is implemented by maps.DiningService.
type diningSearcher interface {
	SearchNearby(ctx context.Context, location, cuisine string, limit int) ([]maps.Restaurant, error)
}

type DiningHandler struct {
	dining diningSearcher
}

func NewDiningHandler(dining diningSearcher) *DiningHandler {
	return &DiningHandler{dining: dining}
}

// Nearby handles GET /api/dining/nearby?location=...&cuisine=...&limit=N.
func (h *DiningHandler) Nearby(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		writeError(c, http.StatusBadRequest, "missing location")
		return
	}
	cuisine := strings.TrimSpace(c.Query("cuisine"))

	limit := 3
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 10 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	results, err := h.dining.SearchNearby(ctx, location, cuisine, limit)
	if err != nil {
		writeError(c, http.StatusBadGateway, "places lookup failed")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"restaurants": results})
}
