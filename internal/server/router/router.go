package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router mounts.
type Handlers struct {
	API    *handlers.APIHandler
	Admin  *handlers.AdminHandler
	Render *handlers.RenderHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(corsMiddleware(allowedOrigins))

	r.GET("/", h.API.Index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/dashboard/summary", h.API.Summary)
		v1.GET("/dashboard/cards", h.API.Cards)
		v1.GET("/dashboard/view", h.API.View)
		v1.GET("/balance-sheet/:commodity", h.API.BalanceSheet)
		v1.GET("/soy-complex/balance", h.API.SoyComplex)
		v1.GET("/exports/monthly/:commodity", h.API.MonthlyExports)
		v1.GET("/exports/by-destination/:commodity", h.API.ExportsByDestination)
		v1.GET("/exports/by-port/:commodity", h.API.ExportsByPort)
		v1.GET("/production/:commodity", h.API.Production)
		v1.GET("/prices/:commodity", h.API.Prices)

		v1.GET("/charts/production/:attribute", h.Render.ProductionChart)
		v1.GET("/charts/exports/:commodity", h.Render.ExportsChart)
		v1.GET("/export/dashboard.xlsx", h.Render.Workbook)

		v1.POST("/admin/refresh", h.Admin.Refresh)
		v1.GET("/admin/status", h.Admin.Status)
	}

	if logger != nil {
		logger.Info("router initialized", zap.Int("routes", len(r.Routes())))
	}

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "X-API-Key"},
		MaxAge:       12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
