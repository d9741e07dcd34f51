package routes

import (
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/config"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/handler"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/middleware"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Sales  *handler.SalesHandler
	Upload *handler.UploadHandler
	SAP    *handler.SAPHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
	Log *logger.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		sales := v1.Group("/sales")
		{
			sales.GET("/items/:item_id", h.Sales.GetItemSales)
			sales.GET("/restaurants", h.Sales.ListRestaurants)
		}

		uploads := v1.Group("/uploads")
		{
			uploads.POST("", h.Upload.Create)
			uploads.GET("", h.Upload.List)
			uploads.DELETE("/:id", h.Upload.Delete)
		}

		sap := v1.Group("/sap")
		{
			sap.GET("/codes", h.SAP.ListCodes)
			sap.GET("/match", h.SAP.MatchItems)
		}
	}

	return router
}
