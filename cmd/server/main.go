package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ndanilkin/minimarket/internal/config"
	"github.com/ndanilkin/minimarket/internal/httpserver"
	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/seed"
	"github.com/ndanilkin/minimarket/internal/session"
	"github.com/ndanilkin/minimarket/internal/store"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)

	db, err := store.Open()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	sess := session.New(db)

	ctx := logging.IntoContext(context.Background(), logger)
	if err := seed.Load(ctx, sess.Accounts(), sess.CatalogStore(), cfg.SeedFile); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	httpserver.Register(e, &httpserver.Deps{Session: sess, Log: logger})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	log.Println("shutdown complete")
}
