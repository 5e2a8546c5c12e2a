package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/config"
	"github.com/piresc/stkpush/internal/pkg/database"
	"github.com/piresc/stkpush/internal/pkg/health"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/metrics"
	"github.com/piresc/stkpush/internal/pkg/middleware"
	"github.com/piresc/stkpush/internal/pkg/nsq"
	"github.com/piresc/stkpush/internal/pkg/server"
	"github.com/piresc/stkpush/services/payment/gateway"
	"github.com/piresc/stkpush/services/payment/handler"
	"github.com/piresc/stkpush/services/payment/repository"
	"github.com/piresc/stkpush/services/payment/usecase"
)

func main() {
	configPath := "config/payment.env"
	configs := config.InitConfig(configPath)
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.Bool("debug", configs.App.Debug),
		logger.Bool("mock_upstream", configs.Lipana.EnableMock),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	if configs.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := repository.ApplySchema(ctx, postgresClient.GetDB())
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to apply database schema", logger.Err(err))
		}
	}

	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
	}

	// publisher stays an untyped nil when NSQ is disabled so events become no-ops
	var producer *nsq.Producer
	var publisher gateway.Publisher
	if configs.NSQ.Address != "" {
		producer, err = nsq.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", logger.Err(err))
		}
		publisher = producer
	}
	eventsGW := gateway.NewNSQEventGateway(publisher, configs.NSQ.Topic)

	transactionRepo := repository.NewTransactionRepository(configs, postgresClient.GetDB())
	lipanaGW := gateway.NewLipanaGateway(configs.Lipana)
	dnsGuard := gateway.NewDNSGuard(configs.Lipana, nil)

	paymentUC, err := usecase.NewPaymentUC(configs, transactionRepo, lipanaGW, dnsGuard, eventsGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment use case", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.HTTPErrorHandler

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(configs.App.Name))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	var initiationLimiter echo.MiddlewareFunc
	if configs.RateLimit.Enabled && redisClient != nil {
		initiationLimiter = middleware.IPRateLimiter(
			configs.RateLimit.Limit,
			time.Duration(configs.RateLimit.PeriodSeconds)*time.Second,
			redisClient.GetClient(),
		)
	}

	handler.NewHandler(configs, paymentUC).RegisterRoutes(e, initiationLimiter)

	healthService := health.NewHealthService()
	healthService.AddChecker(health.DatabaseChecker, health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	if producer != nil {
		healthService.AddChecker("nsq", health.NewPingerHealthChecker(producer))
	}
	health.RegisterHealthEndpoints(e, configs, healthService)

	e.GET("/metrics", metrics.Handler())

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.Components().Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	if redisClient != nil {
		srv.Components().Register("redis", func(context.Context) error {
			return redisClient.Close()
		})
	}
	if producer != nil {
		srv.Components().Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
	zapLogger.Info("Server exiting gracefully")
}
