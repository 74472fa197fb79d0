package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flash-sale-api/internal/handler/api"
	"flash-sale-api/internal/handler/dto/response"
	"flash-sale-api/internal/handler/middleware"
	"flash-sale-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, saleHandler *api.SaleHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, saleHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, saleHandler *api.SaleHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/time", currentTime)

		sales := apiGroup.Group("/sales")
		{
			addRoutes(sales, []route{
				{Method: http.MethodGet, Path: "", Handler: saleHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: saleHandler.Get},
				{Method: http.MethodGet, Path: "/:id/exposure", Handler: saleHandler.Expose},
				{Method: http.MethodPost, Path: "/:id/execution", Handler: saleHandler.Execute},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// @Summary Server time
// @Description Authoritative server clock for countdown rendering
// @Tags time
// @Produce json
// @Success 200 {object} response.TimeResponse
// @Router /time [get]
func currentTime(c *gin.Context) {
	c.JSON(http.StatusOK, response.TimeResponse{Now: time.Now().UnixMilli()})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
