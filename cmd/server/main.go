package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alexis-Monk/triviaapi-U/internal/config"
	"github.com/Alexis-Monk/triviaapi-U/internal/database"
	"github.com/Alexis-Monk/triviaapi-U/internal/handlers"
	"github.com/Alexis-Monk/triviaapi-U/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if cfg.SeedCategories {
		if err := database.Seed(db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	triviaService := services.NewTriviaService(db)
	quizService := services.NewQuizService(triviaService)

	r := handlers.NewRouter(handlers.RouterConfig{
		AllowOrigins: cfg.AllowOrigins,
		AccessLog:    true,
	}, triviaService, quizService)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server starting on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
