package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
	ErrNilTask       = errors.New("job task is required")
)

// Task is a scheduled unit of work. The context is cancelled once the job
// timeout elapses or the scheduler stops.
type Task func(ctx context.Context) error

// Service wraps a gocron scheduler. Jobs run in singleton mode so a slow run
// is never overlapped by the next tick.
type Service struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger

	baseCtx  context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopErr  error
}

func New(logger *logging.Logger) (*Service, error) {
	logger = logging.OrDefault(logger).Named("scheduler")

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", fmt.Sprint(recoverData),
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		scheduler: sched,
		logger:    logger,
		baseCtx:   ctx,
		cancel:    cancel,
	}, nil
}

func (s *Service) Start() {
	s.logger.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop cancels running tasks and waits for them to return.
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.cancel()
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddCronJob registers task on a five-field cron expression.
func (s *Service) AddCronJob(name, cronExpr string, timeout time.Duration, task Task) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}
	if task == nil {
		return nil, ErrNilTask
	}

	jobLogger := s.logger.With("job_name", name, "cron", cronExpr)

	run := func() {
		ctx := s.baseCtx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		startedAt := time.Now()
		jobLogger.Debug("scheduler job started")
		if err := task(ctx); err != nil {
			jobLogger.Error("scheduler job failed", "error", err, "duration", time.Since(startedAt))
			return
		}
		jobLogger.Info("scheduler job completed", "duration", time.Since(startedAt))
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(run),
		gocron.WithName(name),
	)
	if err != nil {
		return nil, fmt.Errorf("register job %s: %w", name, err)
	}

	jobLogger.Info("scheduler job registered")
	return job, nil
}
