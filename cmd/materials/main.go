package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/api/handlers/material"
	"github.com/mati-tech/microservices1112/internal/api/router"
	"github.com/mati-tech/microservices1112/internal/api/server"
	"github.com/mati-tech/microservices1112/internal/config"
	"github.com/mati-tech/microservices1112/internal/repository"
	matrepo "github.com/mati-tech/microservices1112/internal/repository/material"
	matsvc "github.com/mati-tech/microservices1112/internal/service/material"
	"github.com/mati-tech/microservices1112/pkg/notifyclient"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "materials",
		Short: "Educational materials catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config/materials.yaml", "path to the config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the materials schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(cmd.Context())
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()

	if err := root.ExecuteContext(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func migrate(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := repository.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer repository.Close(db)

	if err := matrepo.NewRepository(db).Migrate(ctx); err != nil {
		return err
	}

	zlog.Logger.Info().Msg("materials schema is up to date")
	return nil
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := repository.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer repository.Close(db)

	repo := matrepo.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	service := matsvc.NewService(repo, nil)
	if cfg.Notify.Enabled {
		events := notifyclient.New(cfg.Notify.URL, cfg.Notify.Recipients, cfg.Notify.Timeout)
		service = matsvc.NewService(repo, events)
		zlog.Logger.Info().Str("url", cfg.Notify.URL).Int("recipients", len(cfg.Notify.Recipients)).
			Msg("material_created events enabled")
	}

	r := router.NewMaterials(material.NewHandler(service, validator.New()))
	s := server.New(cfg.Server.HTTPPort, r, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("materials service started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	return nil
}
