package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pawshop/internal/adapters/analytics/kafka"
	pg "pawshop/internal/adapters/storage/postgres"
	rds "pawshop/internal/adapters/storage/redis"
	"pawshop/internal/config"
	"pawshop/internal/domain/favorites"
	"pawshop/internal/platform/logger"
	"pawshop/internal/ports/analytics"
	"pawshop/internal/router"
	"pawshop/migrations"
)

// @title PawShop Storefront API
// @version 1.0
// @description Backend de la tienda PawShop: home, listado con filtros, ficha de producto y favoritos.
// @BasePath /
func main() {
	// .env es opcional (dev)
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.New(logger.Options{Format: logger.FormatText}).Error("failed to load config", map[string]any{"err": err})
		os.Exit(2)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

func run(ctx context.Context, cfg config.Config, log logger.Logger) error {
	var db *sql.DB
	if cfg.DB.DSN != "" {
		if cfg.DB.AutoMigrate {
			if err := pg.Migrate(cfg.DB.DSN, migrations.FS, "", log); err != nil {
				return err
			}
		}
		opened, err := pg.Open(ctx, cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened
		log.Info("catalog backed by postgres", nil)
	}

	var favStore favorites.Store
	if cfg.Session.Store == "redis" {
		client, err := rds.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		favStore = rds.NewFavoritesStore(client, cfg.Session.TTL)
		log.Info("favorites backed by redis", map[string]any{"addr": cfg.Redis.Addr})
	}

	var events analytics.Publisher = analytics.Nop{}
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return err
		}
		events = p
		log.Info("analytics events to kafka", map[string]any{"topic": cfg.Kafka.Topic})
	}
	defer events.Close()

	app := router.New(router.Options{
		DB:          db,
		Favorites:   favStore,
		Events:      events,
		Logger:      log,
		SessionTTL:  cfg.Session.TTL,
		InitialCart: cfg.Session.InitialCart,
		FixedDetail: cfg.Storefront.FixedDetail,
		Version:     cfg.App.Version,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      app.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return app.Sessions.Run(gctx, cfg.Session.SweepInterval, func(expired []string) {
			log.Debug("sessions expired", map[string]any{"count": len(expired)})
		})
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
