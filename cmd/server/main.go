package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"budget_backend/internal/app/di"
	"budget_backend/internal/app/router"
	expenseadapters "budget_backend/internal/feature/expense/adapters"
	expensehandler "budget_backend/internal/feature/expense/transport/handler"
	expenseusecase "budget_backend/internal/feature/expense/usecase"
	useradapters "budget_backend/internal/feature/user/adapters"
	userhandler "budget_backend/internal/feature/user/transport/handler"
	userusecase "budget_backend/internal/feature/user/usecase"
	"budget_backend/internal/platform/config"
	platformdb "budget_backend/internal/platform/db"
	platformredis "budget_backend/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := platformdb.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("[FATAL] failed to open store: %v", err)
	}
	defer func() {
		if err := platformdb.Close(db); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()
	if err := platformdb.InitSchema(ctx, db, &useradapters.UserModel{}, &expenseadapters.ExpenseModel{}); err != nil {
		log.Fatalf("[FATAL] failed to initialise schema: %v", err)
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "addr", cfg.Redis.Addr(), "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := useradapters.NewUserRepository(db)
	expenseRepo := di.NewExpenseRepository(rdb, cfg.Redis.TTL, db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	expenseUC := expenseusecase.NewExpenseUsecase(expenseRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	expenseH := expensehandler.NewExpenseHandler(expenseUC)

	// ルータ生成
	r := router.NewRouter(userH, expenseH, router.Options{
		RequestTimeout: cfg.RequestTimeout,
		CORSEnabled:    cfg.CORSEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "driver", cfg.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
