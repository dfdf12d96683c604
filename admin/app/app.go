package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/config"
	"github.com/bookmart/admin-service/admin/internal/diag"
	"github.com/bookmart/admin-service/admin/internal/handler"
	"github.com/bookmart/admin-service/admin/internal/repository"
	"github.com/bookmart/admin-service/admin/internal/server"
	"github.com/bookmart/admin-service/admin/internal/service"
	"github.com/bookmart/admin-service/admin/migrations"
	"github.com/bookmart/admin-service/pkg/kafka"
	"github.com/bookmart/admin-service/pkg/logger"
	"github.com/bookmart/admin-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "admin")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var enqueuer service.Enqueuer
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		enqueuer = service.NewEnqueuer(producer)
	} else {
		log.Warn("kafka is not configured, audit events disabled")
	}

	prober := diag.NewProber(diag.DefaultChecks(cfg.Diag.CatalogURL, cfg.Diag.RecsURL), log)
	svc := service.NewService(repo, prober, enqueuer, cfg.Avatar.BaseURL, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
