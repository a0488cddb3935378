package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"frame-pricing/internal/handler/api"
	"frame-pricing/internal/handler/middleware"
	"frame-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pricingHandler *api.PricingHandler,
	tempProductHandler *api.TempProductHandler,
	cleanupHandler *api.CleanupHandler,
	shopAuth *middleware.ShopAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, pricingHandler, tempProductHandler, cleanupHandler, shopAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	pricingHandler *api.PricingHandler,
	tempProductHandler *api.TempProductHandler,
	cleanupHandler *api.CleanupHandler,
	shopAuth *middleware.ShopAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Storefront traffic forwarded by the app proxy
	proxy := engine.Group("/apps/proxy")
	{
		addRoutes(proxy, []route{
			{Method: http.MethodPost, Path: "/calculate-price", Handler: pricingHandler.Calculate},
			{Method: http.MethodPost, Path: "/create-temp-product", Handler: tempProductHandler.Create,
				Mw: []gin.HandlerFunc{shopAuth.RequireAppProxy()}},
		})
	}

	apiGroup := engine.Group("/api")
	{
		embedded := apiGroup.Group("")
		embedded.Use(shopAuth.RequireSessionToken())
		addRoutes(embedded, []route{
			{Method: http.MethodPost, Path: "/calculate-price", Handler: pricingHandler.Calculate},
			{Method: http.MethodPost, Path: "/create-temp-product", Handler: tempProductHandler.Create},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/cleanup-temp-products", Handler: cleanupHandler.Cleanup,
				Mw: []gin.HandlerFunc{middleware.RequireCronSecret(cfg.Cron.Secret)}},
			{Method: http.MethodGet, Path: "/cleanup-temp-products", Handler: cleanupHandler.Usage},
		})
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
