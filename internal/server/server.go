package server

import (
	"context"
	"net/http"

	"pledgefit/internal/auth"
	"pledgefit/internal/config"
	"pledgefit/internal/email"
	"pledgefit/internal/pledge"
	"pledgefit/internal/subscription"
	"pledgefit/internal/workoutlog"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	subscriptionHandler := subscription.NewHandler(db)
	pledgeHandler := pledge.NewHandler(db)
	logHandler := workoutlog.NewHandler(db, emailService)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	api := router.Group("/api")
	api.Use(authMiddleware)
	{
		api.GET("/plans", subscriptionHandler.ListPlans)
		api.GET("/subscription", subscriptionHandler.GetMy)
		api.GET("/pledge", pledgeHandler.GetMy)
		api.POST("/workout-logs", logHandler.CreateLog)
		api.GET("/workout-logs/cooldown-status", logHandler.CooldownStatus)
		api.GET("/workouts/current-week", logHandler.CurrentWeek)
		api.GET("/eligibility", logHandler.Eligibility)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/subscriptions", subscriptionHandler.Activate)
		admin.POST("/subscriptions/:subscriptionID/settle", logHandler.Settle)
		admin.GET("/users/:userID/workout-logs", logHandler.ListUserLogs)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
