package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/microtweet/microtweet/internal/config"
	"github.com/microtweet/microtweet/internal/handlers"
	"github.com/microtweet/microtweet/internal/middleware"
	"github.com/microtweet/microtweet/internal/repository"
	"github.com/microtweet/microtweet/internal/services"
	"github.com/microtweet/microtweet/pkg/logger"
	"github.com/microtweet/microtweet/pkg/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logger.NewLogger(cfg.Log.Level)
	logger.Info("Starting Microtweet API server...")

	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	ctx := context.Background()
	if err := db.Seed(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to seed database")
	}

	store, err := storage.NewFileStore(cfg.Storage.UploadDir)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize blob store")
	}

	userRepo := repository.NewUserRepository(db.DB)
	followRepo := repository.NewFollowRepository(db.DB)
	tweetRepo := repository.NewTweetRepository(db.DB)
	likeRepo := repository.NewLikeRepository(db.DB)
	pictureRepo := repository.NewPictureRepository(db.DB)

	userService := services.NewUserService(db, userRepo, followRepo, logger)
	tweetService := services.NewTweetService(db, tweetRepo, logger)
	likeService := services.NewLikeService(db, likeRepo, logger)
	mediaService := services.NewMediaService(pictureRepo, store, logger)

	userHandler := handlers.NewUserHandler(userService)
	tweetHandler := handlers.NewTweetHandler(tweetService, likeService)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	auth := middleware.NewAPIKeyAuth(userService)
	router := handlers.NewRouter(&cfg.Server, auth, userHandler, tweetHandler, mediaHandler)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

func init() {
	dirs := []string{"uploads", "configs"}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Failed to create directory %s: %v", dir, err)
		}
	}

	configPath := "configs/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfig(configPath); err != nil {
			log.Printf("Failed to create default config: %v", err)
		}
	}
}

func createDefaultConfig(path string) error {
	defaultConfig := `server:
  port: ":8080"
  mode: "debug"
  read_timeout: 30s
  write_timeout: 30s
  request_timeout: 15s

database:
  driver: "postgres"
  host: "localhost"
  port: 5432
  user: "admin"
  password: "admin"
  dbname: "admin"
  sslmode: "disable"
  max_open_conns: 100
  max_idle_conns: 10

storage:
  upload_dir: "uploads"

log:
  level: "info"`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
