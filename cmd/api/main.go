package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"budget/internal/auth"
	"budget/internal/config"
	"budget/internal/database"
	budgetHttp "budget/internal/http"
	authHandler "budget/internal/http/auth"
	"budget/internal/http/render"
	txHandler "budget/internal/http/transaction"
	"budget/internal/transaction"
	txStore "budget/internal/transaction/store"
	"budget/internal/user"
	userStore "budget/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	sessions := auth.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	var (
		userService        = user.NewService(userStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
	)

	var (
		authH = authHandler.NewHandler(userService, sessions, renderer)
		txH   = txHandler.NewHandler(transactionService, renderer)
	)

	router := budgetHttp.New(sessions, authH, txH, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
