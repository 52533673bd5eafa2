package main

import (
	"context"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/booking/handler"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/module/booking/usecases"
	"travel-booking-service/internal/pkg/database"
	"travel-booking-service/internal/pkg/httpclient"
	log_internal "travel-booking-service/internal/pkg/log"
	"travel-booking-service/internal/pkg/messagestream"
	"travel-booking-service/internal/pkg/redis"
	"travel-booking-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type service struct {
	cfg        *config.Config
	logger     log_internal.Logger
	repo       repositories.Repositories
	handler    *handler.BookingHandler
	publisher  message.Publisher
	subscriber message.Subscriber
	scheduler  *scheduler.Scheduler
}

// initService wires the dependencies shared by the serve and worker commands.
func initService(cfg *config.Config) *service {
	ctx := context.Background()

	// init logger
	logZap := log_internal.SetupLoggerWithLevel(cfg.Log.Level)
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLog := otelzap.New(logZap)

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	rs := redis.SetupRedsync(redisClient)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init task scheduler
	sch := &scheduler.Scheduler{Log: logger}
	asynqClient := sch.InitClient(&cfg.Redis)
	inspector := sch.InitInspector(&cfg.Redis)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	bookingRepo := repositories.New(db, logger, httpClient, &cfg.UserService, redisClient, rs, asynqClient, inspector, &cfg.Booking)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, &cfg.Booking)

	bookingHandler := &handler.BookingHandler{
		Log:       otelLog,
		Validator: validator.New(),
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	return &service{
		cfg:        cfg,
		logger:     logger,
		repo:       bookingRepo,
		handler:    bookingHandler,
		publisher:  publisher,
		subscriber: subscriber,
		scheduler:  sch,
	}
}
