package main

import (
	"context"
	"log"

	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/http"
	"travel-booking-service/internal/pkg/messagestream"
	"travel-booking-service/internal/pkg/middleware"
	router "travel-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the payment event consumer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.InitConfig()
			svc := initService(cfg)
			ctx := context.Background()

			var messageRouters []*message.Router

			paymentRouter, err := messagestream.NewRouter(
				svc.publisher,
				messagestream.TopicPoisoned,
				"payment_confirmed_handler",
				messagestream.TopicPaymentConfirmed,
				svc.subscriber,
				svc.handler.ConsumePaymentConfirmed,
			)
			if err != nil {
				svc.logger.Error(ctx, "Failed to create payment_confirmed router", err)
			} else {
				messageRouters = append(messageRouters, paymentRouter)
			}

			for _, r := range messageRouters {
				go func(r *message.Router) {
					if err := r.Run(ctx); err != nil {
						log.Fatal(err)
					}
				}(r)
			}

			m := &middleware.Middleware{
				Log:  svc.handler.Log,
				Repo: svc.repo,
			}

			serverHttp := http.SetupHttpEngine(&cfg.HttpServer)
			app := router.Initialize(serverHttp, svc.handler, m)

			// start http server
			http.StartHttpServer(app, cfg.HttpServer.Port)

			for _, r := range messageRouters {
				if err := r.Close(); err != nil {
					svc.logger.Error(ctx, "error close message router", err)
				}
			}
			return nil
		},
	}
}
