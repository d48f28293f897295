package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/theflightrs/Speedchannel-Ultimate/config"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/api"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/auth"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/authz"
	channelrepo "github.com/theflightrs/Speedchannel-Ultimate/internal/channel/repository"
	channeluc "github.com/theflightrs/Speedchannel-Ultimate/internal/channel/usecase"
	settingsrepo "github.com/theflightrs/Speedchannel-Ultimate/internal/settings/repository"
	settingsuc "github.com/theflightrs/Speedchannel-Ultimate/internal/settings/usecase"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/storage"
	userrepo "github.com/theflightrs/Speedchannel-Ultimate/internal/user/repository"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/crypto"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.LoggerMode.Development {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	defer db.Close()

	key, err := cfg.MessageKey()
	if err != nil {
		appLogger.Error("message key unusable", "err", err)
		os.Exit(1)
	}
	box, err := crypto.NewBox(key)
	if err != nil {
		appLogger.Error("crypto init failed", "err", err)
		os.Exit(1)
	}

	blobs, err := storage.NewFilesystemStore(cfg.Upload.Dir)
	if err != nil {
		appLogger.Error("blob store init failed", "err", err)
		os.Exit(1)
	}

	users := userrepo.NewUserRepository(db, appLogger)
	channels := channelrepo.NewChannelRepository(db, appLogger)
	memberships := channelrepo.NewMembershipRepository(db, appLogger)
	messages := channelrepo.NewMessageRepository(db, appLogger)
	settings := settingsrepo.NewSettingsRepository(db, appLogger)

	resolver := authz.NewResolver(memberships)

	directoryUC := channeluc.NewDirectoryUsecase(channels, memberships, resolver, blobs, appLogger, cfg)
	membershipUC := channeluc.NewMembershipUsecase(channels, memberships, users, resolver, appLogger)
	messageUC := channeluc.NewMessageUsecase(channels, messages, resolver, box, blobs, appLogger, cfg)
	settingsUC := settingsuc.NewSettingsUsecase(settings, appLogger)

	tokens, err := auth.NewTokenManager(cfg)
	if err != nil {
		appLogger.Error("token manager init failed", "err", err)
		os.Exit(1)
	}
	authmw := auth.NewMiddleware(tokens, users, appLogger)

	handlers := api.NewHandlers(directoryUC, membershipUC, messageUC, settingsUC, users, appLogger)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.NewRouter(handlers, authmw),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", "err", err)
	}
}
