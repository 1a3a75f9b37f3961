// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/http/handlers"
	"voyage/internal/http/middleware"
	"voyage/internal/maps"
	"voyage/internal/modules/planner"
	"voyage/internal/modules/prfaq"
	"voyage/internal/modules/research"
	"voyage/internal/modules/support"
	"voyage/internal/modules/usage"
)

type RouterDeps struct {
	Planner  *planner.Service
	Support  *support.Service
	Tickets  *support.Store
	Research *research.Service
	PRFAQ    *prfaq.Service
	Usage    *usage.Service
	// Dining is nil when no Maps API key is configured; the dining routes are
	// simply not registered.
	Dining *maps.DiningService
	// JWTSecret empty disables auth.
	JWTSecret string
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.JWTSecret))

	plannerHandler := handlers.NewPlannerHandler(deps.Planner, deps.Usage)
	api.POST("/vacations/plan", plannerHandler.Plan)

	supportHandler := handlers.NewSupportHandler(deps.Support, deps.Tickets, deps.Usage)
	api.POST("/support/respond", supportHandler.Respond)
	api.GET("/support/tickets/:id", supportHandler.GetTicket)

	researchHandler := handlers.NewResearchHandler(deps.Research, deps.Usage)
	api.POST("/research/summarize", researchHandler.Summarize)
	api.POST("/research/linkedin", researchHandler.LinkedIn)

	prfaqHandler := handlers.NewPRFAQHandler(deps.PRFAQ, deps.Usage)
	api.POST("/prfaq", prfaqHandler.Generate)

	if deps.Dining != nil {
		diningHandler := handlers.NewDiningHandler(deps.Dining)
		api.GET("/dining/nearby", diningHandler.Nearby)
	}

	return r
}
