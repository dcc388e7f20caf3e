package http

import (
	"time"

	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers onto the engine.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	authService := service.NewAuthService(repository.NewUserRepository(db), tokens, cfg.BcryptCost)
	projectService := service.NewProjectService(repository.NewProjectRepository(db))
	taskService := service.NewTaskService(repository.NewTaskRepository(db))

	h := handlers.NewHandler(authService, projectService, taskService)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiRL := rateLimiter(cfg, cfg.APIRateLimit, cfg.APIRateWindow)
	authRL := rateLimiter(cfg, cfg.AuthRateLimit, cfg.AuthRateWindow)
	// per-user, not per-IP; runs after the auth middleware
	writeRL := middleware.UserRateLimit(cfg.WriteRateLimit, cfg.WriteRateWindow)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(apiRL)
	registerAPIRoutes(v1, h, tokens, authRL, writeRL)

	// Legacy unversioned /api routes
	api := r.Group("/api")
	api.Use(apiRL)
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, tokens, authRL, writeRL)
}

// rateLimiter picks the Redis-backed limiter when Redis is configured and
// the in-memory one otherwise.
func rateLimiter(cfg *config.Config, limit int, window time.Duration) gin.HandlerFunc {
	if cfg.RedisAddr != "" {
		return middleware.RedisRateLimit(limit, window)
	}
	return middleware.SimpleRateLimit(limit, window)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, tokens *service.TokenManager, authRL, writeRL gin.HandlerFunc) {
	auth := middleware.Auth(tokens)

	// Auth
	api.POST("/auth/register", authRL, h.Register)
	api.POST("/auth/login", authRL, h.Login)

	// User profile
	api.GET("/users/profile", auth, h.Profile)
	api.GET("/users/me", auth, h.Profile)

	// Projects (owner-scoped)
	projects := api.Group("/projects")
	projects.Use(auth)
	{
		projects.POST("", writeRL, h.CreateProject)
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id", writeRL, h.UpdateProject)
		projects.DELETE("/:id", writeRL, h.DeleteProject)
	}

	// Tasks (owner-scoped)
	tasks := api.Group("/tasks")
	tasks.Use(auth)
	{
		tasks.POST("", writeRL, h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PATCH("/:id", writeRL, h.UpdateTask)
		tasks.DELETE("/:id", writeRL, h.DeleteTask)
	}
}
