package main

import (
	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/scheduler"

	"github.com/spf13/cobra"
)

func WorkerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run pending-booking expiry and schedule reconciliation tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			withMonitoring, _ := cmd.Flags().GetBool("monitoring")

			cfg := config.InitConfig()
			svc := initService(cfg)

			if withMonitoring {
				go svc.scheduler.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
			}
			go svc.scheduler.StartPeriodic(&cfg.Redis, cfg.Scheduler.ReconcileCronSpec, scheduler.TypeReconcileSchedules)

			// blocks until the asynq server shuts down
			svc.scheduler.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency, []scheduler.TaskHandler{
				{TaskType: scheduler.TypeExpireBooking, Handle: svc.handler.ExpireBooking},
				{TaskType: scheduler.TypeReconcileSchedules, Handle: svc.handler.ReconcileSchedulesTask},
			})
			return nil
		},
	}

	cmd.Flags().Bool("monitoring", true, "serve the asynqmon dashboard")
	return cmd
}
