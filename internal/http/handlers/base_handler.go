// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyage/internal/ai"
	"voyage/internal/http/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

// callerOrBodyUID resolves the uid to meter a request under: the body uid
// when supplied, otherwise the authenticated JWT subject. Both may be absent;
// an empty uid with ok=true means an anonymous caller. ok=false flags a
// malformed body uid.
func callerOrBodyUID(c *gin.Context, bodyUID string) (string, bool) {
	uid := strings.TrimSpace(bodyUID)
	if uid == "" {
		uid = middleware.CallerUID(c)
	}
	if uid != "" && !isValidUID(uid) {
		return "", false
	}
	return uid, true
}

// isValidUID ensures user IDs are short alphanumerics (matches auth subjects).
func isValidUID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeGenerationError(c *gin.Context, err error) {
	var parseErr *ai.ParseError
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ai.ErrService):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &parseErr):
		writeError(c, http.StatusBadGateway, parseErr.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
