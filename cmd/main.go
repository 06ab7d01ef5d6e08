package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/umbreon222/Todo-List-Api/internal/api/graphql"
	"github.com/umbreon222/Todo-List-Api/internal/api/http/router"
	httpServer "github.com/umbreon222/Todo-List-Api/internal/api/http/server"
	"github.com/umbreon222/Todo-List-Api/internal/config"
	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/repository/postgres"
	"github.com/umbreon222/Todo-List-Api/internal/security"
	"github.com/umbreon222/Todo-List-Api/internal/server"
	"github.com/umbreon222/Todo-List-Api/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// A missing .env is fine; the environment alone may carry the config.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	infoRepo := postgres.NewCreationInformationRepository(db)
	listRepo := postgres.NewListRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	tagRepo := postgres.NewTagRepository(db)

	userService := service.NewUser(userRepo, security.NewSaltedSHA3(cfg.Security.PasswordHashSalt), logger)
	infoService := service.NewCreationInformation(infoRepo, db, userService, logger)
	tagService := service.NewTag(tagRepo, db, infoService, logger)
	taskService := service.NewTask(taskRepo, listRepo, db, infoService, tagService, logger)
	listService := service.NewList(listRepo, db, userService, infoService, taskService, logger)

	resolver := graphql.NewResolver(userService, infoService, listService, taskService, tagService, logger)
	r := router.New(resolver, db, router.Options{
		RateLimit:     cfg.HTTP.RateLimit,
		EnableMetrics: cfg.HTTP.EnableMetrics,
		Development:   cfg.HTTP.Development,
	}, logger)
	handler, err := r.Register()
	if err != nil {
		logger.Fatal("failed to register routes", "error", err)
	}

	srv := httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
