package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	authadapter "taskhub/internal/adapter/auth"
	dbadapter "taskhub/internal/adapter/db"
	httpadapter "taskhub/internal/adapter/http"
	"taskhub/internal/adapter/http/handlers"
	httpmiddleware "taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/memory"
	appservice "taskhub/internal/app/service"
	"taskhub/internal/config"
	"taskhub/internal/core/ports"
)

type repositories struct {
	users      ports.UserRepository
	categories ports.CategoryRepository
	tasks      ports.TaskRepository
}

type services struct {
	auth       ports.AuthService
	categories ports.CategoryService
	tasks      ports.TaskService
}

// openRepositories returns the SQL repositories, or the in-memory store when
// SKIP_DB_CONNECTION is set. db is nil in the latter case.
func openRepositories(cfg *config.Config) (repositories, *sqlx.DB, error) {
	if cfg.SkipDBConnection {
		store := memory.NewStore()
		return repositories{
			users:      store.Users(),
			categories: store.Categories(),
			tasks:      store.Tasks(),
		}, nil, nil
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect to %s: %w", cfg.DbDriver, err)
	}

	return repositories{
		users:      dbadapter.NewUserRepository(db),
		categories: dbadapter.NewCategoryRepository(db),
		tasks:      dbadapter.NewTaskRepository(db),
	}, db, nil
}

func newServices(cfg *config.Config, repos repositories) services {
	return services{
		auth: appservice.NewAuthService(
			repos.users,
			authadapter.NewBcryptHasher(cfg.BcryptCost),
			authadapter.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiresIn),
		),
		categories: appservice.NewCategoryService(repos.categories),
		tasks:      appservice.NewTaskService(repos.tasks, repos.categories),
	}
}

func newRouter(cfg *config.Config, db *sqlx.DB, svc services, logger *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))

	httpadapter.RegisterRoutes(r, svc.auth, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion),
		Auth:     handlers.NewAuthHandler(svc.auth),
		Category: handlers.NewCategoryHandler(svc.categories),
		Task:     handlers.NewTaskHandler(svc.tasks),
	})

	return r, nil
}
