package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-tracker/internal/config"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/handlers"
	"github.com/yukikurage/task-tracker/internal/logger"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sugar, err := logger.New(cfg.Log.Level, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to database
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	svc := handlers.NewServices(db)

	if cfg.Bootstrap.Enabled() {
		created, err := svc.Users.EnsureAdmin(context.Background(), services.CreateUserInput{
			UserName: cfg.Bootstrap.AdminUserName,
			Name:     cfg.Bootstrap.AdminName,
			Email:    cfg.Bootstrap.AdminEmail,
			Password: cfg.Bootstrap.AdminPassword,
		})
		if err != nil {
			return err
		}
		if created {
			log.Infow("bootstrap admin created", "user_name", cfg.Bootstrap.AdminUserName)
		}
	}

	store, err := newSessionStore(cfg, log)
	if err != nil {
		return err
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	handlers.RegisterRoutes(r, db, svc, log)

	srv := &http.Server{
		Addr:    net.JoinHostPort("", cfg.Server.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "addr", srv.Addr, "db_driver", cfg.DB.Driver, "session_store", cfg.Session.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionStore(cfg *config.Config, log *zap.SugaredLogger) (sessions.Store, error) {
	secret := cfg.Session.Secret
	if secret == "" {
		generated, err := utils.GenerateSecret(32)
		if err != nil {
			return nil, err
		}
		secret = generated
		log.Warnw("SESSION_SECRET is not set, sessions will not survive a restart")
	}

	var store sessions.Store
	switch cfg.Session.Store {
	case config.SessionStoreCookie:
		store = cookie.NewStore([]byte(secret))
	default:
		redisAddr := net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port)
		rs, err := redisStore.NewStore(
			cfg.Redis.PoolSize,
			"tcp",
			redisAddr,
			"", // username (empty for default user)
			cfg.Redis.Password,
			[]byte(secret),
		)
		if err != nil {
			return nil, err
		}
		store = rs
	}

	// Configure session options based on environment
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
