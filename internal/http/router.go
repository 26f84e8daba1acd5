package api

import (
	stdhttp "net/http"
	"time"

	intconfig "barcode-api/internal/config"
	h "barcode-api/internal/http/handlers"
	"barcode-api/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Sugar().Warnf("failed to set trusted proxies: %v", err)
	}

	h.SetRouter(r)
	h.SetLogger(log.Sugar())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"detail": "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	r.GET("/routes", h.Routes)

	r.GET("/barcode", h.GenerateBarcode)
	r.GET("/qrcode", h.GenerateQRCode)
	r.POST("/qrcode/vehicle", h.GenerateVehicleQRCode)

	return r
}

// corsMiddleware allows any origin, method and header with credentials by
// default. The wildcard origin is void in credentialed requests, so the
// request origin is echoed back instead. CORS_ALLOWED_ORIGINS narrows the
// policy to an explicit list.
func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
	} else {
		cfg.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(cfg)
}
