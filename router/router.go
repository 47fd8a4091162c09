// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trialdesk/participant-manager/api/controller"
	"github.com/trialdesk/participant-manager/api/middleware"
)

// SetupRouter wires the middleware chain and endpoint groups. Study
// ingestion endpoints are called by upstream platform components and carry
// audit headers instead of an admin identity, so they sit outside AdminAuth.
func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	api := router.Group("/api/v1")

	controllers.Study.RegisterRoutes(api)

	admin := api.Group("", middleware.AdminAuth())
	controllers.Location.RegisterRoutes(admin)
	controllers.Participant.RegisterRoutes(admin)

	return router
}
