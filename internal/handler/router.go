package handler

import (
	"go-gin-stream-events/internal/middleware"
	"go-gin-stream-events/internal/service"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowedOrigins []string
	UploadDir      string
	MediaURL       string
	// AuthLimit 套用在註冊與登入，nil 表示不限流
	AuthLimit gin.HandlerFunc
	Checks    map[string]Checker
}

// NewRouter 組裝 middleware 與所有路由
func NewRouter(cfg RouterConfig, events service.EventService, accounts service.AccountService) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Tracing(),
		middleware.Metrics(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Authenticate(accounts),
	)

	NewSystemHandler(cfg.Checks).RegisterRoutes(r)
	NewEventHandler(events).RegisterRoutes(r)
	NewAccountHandler(accounts, cfg.AuthLimit).RegisterRoutes(r)

	if cfg.UploadDir != "" && cfg.MediaURL != "" {
		r.Static(cfg.MediaURL, cfg.UploadDir)
	}
	return r
}
