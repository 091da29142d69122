package router

import (
	"github.com/gin-gonic/gin"

	"spamlens/internal/handler"
	"spamlens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	classifyH *handler.ClassifyHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.POST("/predict", classifyH.Predict)
	r.POST("/analyze-all", classifyH.AnalyzeAll)

	return r
}
