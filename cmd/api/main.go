package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/SNcodeur2001/projet-final-todo/internal/adapter/db"
	httpadapter "github.com/SNcodeur2001/projet-final-todo/internal/adapter/http"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/handlers"
	httpmiddleware "github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/middleware"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/storage"
	"github.com/SNcodeur2001/projet-final-todo/internal/app/service"
	"github.com/SNcodeur2001/projet-final-todo/internal/config"
	"github.com/SNcodeur2001/projet-final-todo/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(ctx, db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	uploads, err := storage.NewDiskStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		logger.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	taskRepo := dbadapter.NewTaskRepository(db)
	grantRepo := dbadapter.NewPermissionRepository(db)
	historyRepo := dbadapter.NewHistoryRepository(db)
	attachmentRepo := dbadapter.NewAttachmentRepository(db)
	userRepo := dbadapter.NewUserRepository(db)

	permissionService := service.NewPermissionService(taskRepo, grantRepo)
	taskService := service.NewTaskService(taskRepo, grantRepo, permissionService, historyRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, permissionService, historyRepo)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.JWTTTL)
	userService := service.NewUserService(userRepo)

	sweeper := service.NewSweeper(taskRepo, cfg.SweepInterval, logger)
	go sweeper.Run(ctx)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSize
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Static("/uploads", cfg.UploadDir)

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Auth:       handlers.NewAuthHandler(authService),
		Task:       handlers.NewTaskHandler(taskService, uploads),
		Attachment: handlers.NewAttachmentHandler(attachmentService, uploads),
		User:       handlers.NewUserHandler(userService),
	}, authService)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
