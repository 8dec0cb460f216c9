package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gymhabit/internal/auth"
	"gymhabit/internal/catalog"
	"gymhabit/internal/config"
	"gymhabit/internal/inquiry"
)

type Server struct {
	router *gin.Engine
	config *config.Config
	http   *http.Server
}

func New(cfg *config.Config, catalogService catalog.Service, inquiryService inquiry.Service, verifier *auth.Verifier) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	catalogHandler := catalog.NewHandler(catalogService)
	inquiryHandler := inquiry.NewHandler(inquiryService)

	public := router.Group("/api")
	{
		public.GET("/partners", catalogHandler.Partners)
		public.GET("/gyms", catalogHandler.ListGyms)
		public.GET("/gyms/nearby", catalogHandler.Nearby)
		public.GET("/gyms/:gymID", catalogHandler.GymDetail)
		public.POST("/subscription/request",
			RateLimitMiddleware(cfg.InquiryRateRPS, cfg.InquiryRateBurst),
			inquiryHandler.Submit)
	}

	router.POST("/api/admin/login", AdminLogin(verifier))

	admin := router.Group("/api/admin")
	admin.Use(auth.AdminMiddleware(verifier))
	{
		admin.GET("/gyms", catalogHandler.ListGyms)
		admin.POST("/gyms/add", catalogHandler.AddGym)
		admin.DELETE("/gyms/:gymID", catalogHandler.DeleteGym)
		admin.POST("/gyms/upload-csv", catalogHandler.UploadCSV)
		admin.GET("/subscriptions", inquiryHandler.List)
	}

	router.GET("/health", Health(catalogService))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		config: cfg,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Admin-Password, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
