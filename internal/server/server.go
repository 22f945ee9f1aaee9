package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/emiranda028/hoteles-sub000/internal/config"
	"github.com/emiranda028/hoteles-sub000/internal/ingest"
	"github.com/emiranda028/hoteles-sub000/internal/server/handlers"
)

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	ingest   *ingest.Service
	handlers *handlers.Handlers
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, svc *ingest.Service, logger *zap.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:   gin.New(),
		ingest:   svc,
		handlers: handlers.NewHandlers(svc, cfg.Report.TopN, logger),
	}
	s.router.Use(gin.Recovery())
	if cfg.Server.DevMode {
		s.router.Use(gin.Logger())
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cached": len(s.ingest.Cached())})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		s.handlers.RegisterRoutes(api)
	}
}

// Handler 返回 http.Handler（用于 http.Server 与测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
