package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/mati-tech/microservices1112/internal/api/handlers/notification"
	"github.com/mati-tech/microservices1112/internal/api/router"
	"github.com/mati-tech/microservices1112/internal/api/server"
	"github.com/mati-tech/microservices1112/internal/config"
	"github.com/mati-tech/microservices1112/internal/model"
	"github.com/mati-tech/microservices1112/internal/rabbitmq/queue"
	"github.com/mati-tech/microservices1112/internal/repository"
	notifrepo "github.com/mati-tech/microservices1112/internal/repository/notification"
	notifsvc "github.com/mati-tech/microservices1112/internal/service/notification"
	"github.com/mati-tech/microservices1112/internal/worker"
	"github.com/mati-tech/microservices1112/pkg/email"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "notifications",
		Short: "Email notification service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config/notifications.yaml", "path to the config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the dispatch workers",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the notifications schema",
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

	if err := notifrepo.NewRepository(db).Migrate(ctx); err != nil {
		return err
	}

	zlog.Logger.Info().Msg("notifications schema is up to date")
	return nil
}

// taskSubmitter is satisfied by both the in-process dispatcher and the rabbitmq queue.
type taskSubmitter interface {
	Submit(ctx context.Context, task model.DispatchTask) error
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

	repo := notifrepo.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	emailClient, err := email.NewClient(email.Config{
		Host:          cfg.Email.SMTPHost,
		Port:          cfg.Email.SMTPPort,
		Username:      cfg.Email.Username,
		Password:      cfg.Email.Password,
		From:          cfg.Email.From,
		SkipTLSVerify: cfg.Email.SkipTLSVerify,
		Timeout:       cfg.Dispatch.SendTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create email client: %w", err)
	}

	var statusCache notifsvc.Cache
	if cfg.Redis.Address != "" {
		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Logger.Warn().Err(err).Msg("redis is unavailable, status cache disabled")
		} else {
			statusCache = rdb
		}
	}

	var (
		submitter  taskSubmitter
		dispatcher *worker.Dispatcher
	)

	switch cfg.Dispatch.Mode {
	case config.DispatchRabbitMQ:
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			return fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
			}
		}()

		ch, err := conn.Channel()
		if err != nil {
			return fmt.Errorf("failed to open channel: %w", err)
		}
		defer func() {
			if err := ch.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
			}
		}()

		q, err := queue.NewDispatchQueue(ch, cfg.RabbitMQ, cfg.Retry)
		if err != nil {
			return fmt.Errorf("failed to create dispatch queue: %w", err)
		}

		submitter = q
		dispatcher = worker.NewDispatcher(cfg.Dispatch.QueueSize, q)
	default:
		dispatcher = worker.NewDispatcher(cfg.Dispatch.QueueSize, nil)
		submitter = dispatcher
	}

	service := notifsvc.NewService(
		repo,
		submitter,
		map[model.Kind]notifsvc.Notifier{model.KindEmail: emailClient},
		statusCache,
		notifsvc.Options{Retry: cfg.Retry, SendTimeout: cfg.Dispatch.SendTimeout},
	)

	workersDone := make(chan struct{})
	go func() {
		dispatcher.Run(ctx, service, cfg.Dispatch.Workers)
		close(workersDone)
	}()

	if cfg.Sweeper.Enabled {
		sweeper := worker.NewSweeper(service, cfg.Sweeper.Schedule, cfg.Sweeper.StaleAfter, cfg.Sweeper.BatchSize)
		if err := sweeper.Start(ctx); err != nil {
			return err
		}
	}

	r := router.NewNotifications(notification.NewHandler(service, validator.New()))
	s := server.New(cfg.Server.HTTPPort, r, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Str("dispatch", cfg.Dispatch.Mode).Msg("notification service started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	select {
	case <-workersDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	return nil
}
