package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/config"
	"github.com/Astemirdum/lms-service/lms/internal/handler"
	"github.com/Astemirdum/lms-service/lms/internal/repository"
	"github.com/Astemirdum/lms-service/lms/internal/server"
	"github.com/Astemirdum/lms-service/lms/internal/service"
	"github.com/Astemirdum/lms-service/lms/migrations"
	"github.com/Astemirdum/lms-service/pkg/auth"
	"github.com/Astemirdum/lms-service/pkg/kafka"
	"github.com/Astemirdum/lms-service/pkg/logger"
	"github.com/Astemirdum/lms-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lms")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()
	reportsDB, err := postgres.NewSQLXDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("reports db init %v", err)
	}
	defer reportsDB.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}
	reports := repository.NewReports(reportsDB, log)
	tokens := auth.NewTokenManager(cfg.JWT)

	var (
		opts     []service.Option
		producer sarama.SyncProducer
		consumer sarama.ConsumerGroup
	)
	if cfg.Kafka.Enable {
		if err = kafka.CreateTopics(cfg.Kafka, kafka.AuditTopic); err != nil {
			return fmt.Errorf("kafka.CreateTopics %v", err)
		}
		producer, err = kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewSyncProducer %v", err)
		}
		defer producer.Close()
		opts = append(opts, service.WithAuditLog(kafka.NewEventLog(producer, kafka.AuditTopic)))
	}
	svc := service.NewService(repo, reports, tokens, log, opts...)

	if cfg.Kafka.Enable {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %v", err)
		}
		defer consumer.Close()
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.RecordAudit, log), log, kafka.AuditTopic)
	}

	h := handler.New(svc, tokens, log)
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

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	cancel()
	log.Info("Graceful shutdown finished")
	return nil
}
