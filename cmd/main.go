package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	catalogapp "github.com/muhammadheryan/humidor-club/application/catalog"
	humidorapp "github.com/muhammadheryan/humidor-club/application/humidor"
	listingapp "github.com/muhammadheryan/humidor-club/application/listing"
	userapp "github.com/muhammadheryan/humidor-club/application/user"
	valuationapp "github.com/muhammadheryan/humidor-club/application/valuation"
	"github.com/muhammadheryan/humidor-club/cmd/config"
	redisclient "github.com/muhammadheryan/humidor-club/cmd/redis"
	_ "github.com/muhammadheryan/humidor-club/docs"
	catalogRepo "github.com/muhammadheryan/humidor-club/repository/catalog"
	humidorRepo "github.com/muhammadheryan/humidor-club/repository/humidor"
	listingRepo "github.com/muhammadheryan/humidor-club/repository/listing"
	redisRepo "github.com/muhammadheryan/humidor-club/repository/redis"
	txRepo "github.com/muhammadheryan/humidor-club/repository/tx"
	userRepo "github.com/muhammadheryan/humidor-club/repository/user"
	"github.com/muhammadheryan/humidor-club/thirdparty/rabbitmq"
	"github.com/muhammadheryan/humidor-club/transport"
	"github.com/muhammadheryan/humidor-club/utils/devlink"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"go.uber.org/zap"
)

// @title HUMIDOR CLUB API
// @version 1.0
// @description Humidor ledger, marketplace and valuation API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "humidor-api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	// the API keeps serving without a broker; mail and events are skipped
	var (
		mailPublisher  userapp.MailPublisher
		eventPublisher listingapp.EventPublisher
	)
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, publishing disabled", zap.Error(err))
	} else {
		defer publisher.Close()
		mailPublisher = publisher
		eventPublisher = publisher
	}

	devLinks := devlink.Noop()
	if cfg.DevLink.Enabled {
		devLinks = devlink.NewMemoryStore(cfg.DevLink.Size, cfg.DevLink.TTL)
		logger.Warn("dev magic-link store enabled")
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)
	HumidorRepo := humidorRepo.NewHumidorRepository(db)
	ListingRepo := listingRepo.NewListingRepository(db)
	CatalogRepo := catalogRepo.NewCachedCatalogRepository(catalogRepo.NewCatalogRepository(db), rdb, cfg.Cache.CatalogTTL)

	// Initialize application layers
	handler := &transport.RestHandler{
		UserApp:      userapp.NewUserApp(cfg, UserRepo, RedisRepo, devLinks, mailPublisher),
		HumidorApp:   humidorapp.NewHumidorApp(TxRepo, HumidorRepo, CatalogRepo),
		ListingApp:   listingapp.NewListingApp(ListingRepo, HumidorRepo, eventPublisher),
		CatalogApp:   catalogapp.NewCatalogApp(TxRepo, CatalogRepo, HumidorRepo),
		ValuationApp: valuationapp.NewValuationApp(ListingRepo, CatalogRepo, cfg.Valuation.CompWindow),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewTransport(handler, cfg.Internal.APIKey),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
