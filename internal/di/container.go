// Package di wires repositories, services, and handlers into a running
// application. Everything is constructed once at boot; the container owns no
// goroutines and needs no teardown beyond what main already does.
package di

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/handler"
	"github.com/Moon-89/HRMIS/internal/middleware"
	"github.com/Moon-89/HRMIS/internal/repository"
	"github.com/Moon-89/HRMIS/internal/service"
	"github.com/Moon-89/HRMIS/pkg/config"
	"github.com/Moon-89/HRMIS/pkg/logger"
	"github.com/Moon-89/HRMIS/pkg/telemetry"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logger.Logger

	UserRepo    repository.UserRepository
	LeaveRepo   repository.LeaveRepository
	TaskRepo    repository.TaskRepository
	SessionRepo repository.SessionRepository

	AuthService  service.AuthService
	UserService  service.UserService
	LeaveService service.LeaveService
	TaskService  service.TaskService

	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	LeaveHandler  *handler.LeaveHandler
	TaskHandler   *handler.TaskHandler
	HealthHandler *handler.HealthHandler
}

// New builds the dependency graph and seeds the in-memory store
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: log}

	c.UserRepo = repository.NewMemoryUserRepository()
	c.LeaveRepo = repository.NewMemoryLeaveRepository()
	c.TaskRepo = repository.NewMemoryTaskRepository()
	c.SessionRepo = repository.NewMemorySessionRepository()

	policy := domain.NewRolePolicy(cfg.Admin.Emails)

	c.AuthService = service.NewAuthService(c.UserRepo, c.SessionRepo, &service.AuthServiceConfig{
		JWTSecret:         cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.AccessTokenTTL,
		SessionTTL:        cfg.JWT.SessionTTL,
		Issuer:            cfg.JWT.Issuer,
		RolePolicy:        policy,
	})
	c.UserService = service.NewUserService(c.UserRepo, policy, 0)
	c.LeaveService = service.NewLeaveService(c.LeaveRepo, c.UserRepo)
	c.TaskService = service.NewTaskService(c.TaskRepo)

	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.LeaveHandler = handler.NewLeaveHandler(c.LeaveService)
	c.TaskHandler = handler.NewTaskHandler(c.TaskService)
	c.HealthHandler = handler.NewHealthHandler(cfg.App.Name)

	if err := c.seed(context.Background()); err != nil {
		return nil, err
	}

	return c, nil
}

// seed loads the demo dataset the frontend expects on a fresh boot
func (c *Container) seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         "Memona",
		Email:        "memona@hrmis.com",
		Role:         domain.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := c.UserRepo.Create(ctx, admin); err != nil {
		return err
	}

	if err := c.LeaveRepo.Create(ctx, &domain.Leave{
		UserID:    admin.ID,
		StartDate: "2026-01-15",
		EndDate:   "2026-01-18",
		Reason:    "Family Visit",
		Status:    domain.LeaveStatusPending,
	}); err != nil {
		return err
	}

	seedTasks := []*domain.Task{
		{Title: "Review Annual Reports", Description: "Check HR metrics", Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusInProgress, Assignee: &admin.ID},
		{Title: "Team Meeting Minutes", Description: "Draft summary", Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusDone, Assignee: &admin.ID},
	}
	for _, t := range seedTasks {
		if err := c.TaskRepo.Create(ctx, t); err != nil {
			return err
		}
	}

	return nil
}

// Router assembles the gin engine with the full middleware chain and routes.
// Exposed separately from New so tests can mount the whole API in-process.
func (c *Container) Router() *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Logger(c.Logger))
	if c.Config.OTel.Enabled {
		r.Use(telemetry.TracingMiddleware(c.Config.OTel.ServiceName))
	}

	r.GET("/health", c.HealthHandler.Health)
	r.GET("/ready", c.HealthHandler.Ready)

	auth := r.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
		auth.POST("/logout", c.AuthHandler.Logout)
	}

	authed := r.Group("/", middleware.Auth(c.AuthService))
	{
		users := authed.Group("/users")
		{
			users.GET("", c.UserHandler.List)
			users.POST("", c.UserHandler.Create)
			users.GET("/profile", c.AuthHandler.Profile)
			users.GET("/email/:email", c.UserHandler.GetByEmail)
			users.GET("/:id", c.UserHandler.Get)
			users.PUT("/:id", c.UserHandler.Update)
			users.DELETE("/:id", c.UserHandler.Delete)
		}

		leaves := authed.Group("/leaves")
		{
			leaves.GET("", c.LeaveHandler.List)
			leaves.POST("", c.LeaveHandler.Create)
			leaves.GET("/user/:id", c.LeaveHandler.ListForUser)
			leaves.GET("/user/:id/:status", c.LeaveHandler.ListForUser)
			leaves.GET("/:id", c.LeaveHandler.Get)
			leaves.PUT("/:id", c.LeaveHandler.Update)
			leaves.DELETE("/:id", c.LeaveHandler.Delete)
		}

		tasks := authed.Group("/tasks")
		{
			tasks.GET("", c.TaskHandler.List)
			tasks.POST("", c.TaskHandler.Create)
			tasks.GET("/:id", c.TaskHandler.Get)
			tasks.PUT("/:id", c.TaskHandler.Update)
			tasks.DELETE("/:id", c.TaskHandler.Delete)
		}
	}

	return r
}
