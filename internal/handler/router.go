package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"asset-factory/internal/handler/api"
	"asset-factory/internal/handler/middleware"
	"asset-factory/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler mounted by the router.
type Handlers struct {
	Protocol    *api.ProtocolHandler
	Admin       *api.AdminHandler
	Collection  *api.CollectionHandler
	Reservation *api.ReservationHandler
	Asset       *api.AssetHandler
	Account     *api.AccountHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := authMiddleware.RequireAuth()
	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/protocol"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Protocol.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Protocol.Init, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPut, Path: "/lock", Handler: h.Protocol.SetLock, Mw: []gin.HandlerFunc{auth}},
		})

		addRoutes(apiGroup.Group("/admins"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Admin.Create, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodGet, Path: "/:identity", Handler: h.Admin.Get},
			{Method: http.MethodDelete, Path: "/:identity", Handler: h.Admin.Remove, Mw: []gin.HandlerFunc{auth}},
		})

		addRoutes(apiGroup.Group("/collections"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Collection.Create, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodGet, Path: "/:owner", Handler: h.Collection.Get},
			{Method: http.MethodPost, Path: "/:owner/close", Handler: h.Collection.Close, Mw: []gin.HandlerFunc{auth}},

			{Method: http.MethodPost, Path: "/:owner/reservations", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodGet, Path: "/:owner/reservations/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:owner/reservations/:id/purchase", Handler: h.Reservation.Purchase, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPost, Path: "/:owner/reservations/:id/airdrop", Handler: h.Reservation.Airdrop, Mw: []gin.HandlerFunc{auth}},

			{Method: http.MethodPost, Path: "/:owner/assets", Handler: h.Asset.Create, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodGet, Path: "/:owner/assets/:id", Handler: h.Asset.Get},
			{Method: http.MethodPost, Path: "/:owner/assets/:id/finalize", Handler: h.Asset.Finalize, Mw: []gin.HandlerFunc{auth}},
		})

		addRoutes(apiGroup.Group("/accounts"), []route{
			{Method: http.MethodGet, Path: "/:address", Handler: h.Account.Balance},
			{Method: http.MethodGet, Path: "/:address/tokens/:mint", Handler: h.Account.TokenBalance},
		})

		if gin.Mode() == gin.DebugMode {
			apiGroup.POST("/faucet", h.Protocol.Faucet)
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
