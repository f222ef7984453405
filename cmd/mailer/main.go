package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/humidor-club/cmd/config"
	"github.com/muhammadheryan/humidor-club/thirdparty/rabbitmq"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"go.uber.org/zap"
)

// mailer delivers queued sign-in links through the mail provider.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "humidor-mailer"); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		rabbitmq.MailerConfig{
			APIURL: cfg.Mailer.APIURL,
			APIKey: cfg.Mailer.APIKey,
			From:   cfg.Mailer.From,
		})
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("mailer consuming", zap.String("queue", rabbitmq.MagicLinkQueue))

	<-ctx.Done()
	logger.Info("mailer stopped")
}
