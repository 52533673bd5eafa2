package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeExpireBooking      = "booking:expire"
	TypeReconcileSchedules = "schedule:reconcile"
)

type Scheduler struct {
	Log log.Logger
}

type TaskHandler struct {
	TaskType string
	Handle   func(ctx context.Context, t *asynq.Task) error
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// StartMonitoring serves the asynqmon dashboard under /monitoring.
func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	// trailing slash is required for asynqmon sub-routes
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) InitInspector(cfg *config.RedisConfig) *asynq.Inspector {
	return asynq.NewInspector(redisOpt(cfg))
}

// StartPeriodic registers recurring tasks and blocks running the asynq scheduler.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronSpec string, taskType string) {
	ctx := context.Background()
	sch := asynq.NewScheduler(redisOpt(cfg), nil)

	entryID, err := sch.Register(cronSpec, asynq.NewTask(taskType, nil))
	if err != nil {
		s.Log.Error(ctx, "error register periodic task", err)
		return
	}
	s.Log.Info(ctx, "periodic task registered", "task", taskType, "spec", cronSpec, "entry_id", entryID)

	if err := sch.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, handlers []TaskHandler) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for _, h := range handlers {
		mux = s.registerHandlers(mux, h.TaskType, h.Handle)
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
