package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/davedmaia/hemolog/internal/config"
	"github.com/davedmaia/hemolog/internal/database"
	hemologHttp "github.com/davedmaia/hemolog/internal/http"
	identityHandler "github.com/davedmaia/hemolog/internal/http/identity"
	inventoryHandler "github.com/davedmaia/hemolog/internal/http/inventory"
	"github.com/davedmaia/hemolog/internal/http/middleware"
	"github.com/davedmaia/hemolog/internal/identity"
	identityStore "github.com/davedmaia/hemolog/internal/identity/store"
	"github.com/davedmaia/hemolog/internal/inventory"
	inventoryStore "github.com/davedmaia/hemolog/internal/inventory/store"
	"github.com/davedmaia/hemolog/internal/logging"
	"github.com/davedmaia/hemolog/internal/token"
)

func main() {
	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.Log.Level, cfg.Log.Format))

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		accountService = identity.NewService(identityStore.New(db))
		ledgerService  = inventory.NewService(inventoryStore.New(db), accountService)
		tokenManager   = token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		auth           = middleware.NewAuthenticator(tokenManager)
	)

	var (
		identityH  = identityHandler.NewHandler(accountService, tokenManager, auth)
		inventoryH = inventoryHandler.NewHandler(ledgerService, accountService)
	)

	router := hemologHttp.New(cfg.CORS.AllowedOrigins, auth, identityH, inventoryH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
