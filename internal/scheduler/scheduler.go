// Package scheduler runs the owner's daily routines on cron schedules.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/metrics"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/cleanup"
	"github.com/robfig/cron/v3"
)

const (
	jobDayInit      = "day_init"
	jobMorningCoach = "morning_coach"
	jobTimeout      = time.Minute
)

// Config holds standard 5-field cron specs. An empty spec disables its job.
type Config struct {
	DayInitSpec      string
	MorningCoachSpec string
}

type Scheduler struct {
	cron    *cron.Cron
	plans   service.DayPlanServiceI
	coach   service.CoachServiceI
	owner   uuid.UUID
	clock   service.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(
	cfg Config,
	owner uuid.UUID,
	plans service.DayPlanServiceI,
	coach service.CoachServiceI,
	clock service.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if clock.Now == nil {
		clock = service.NewClock(clock.Loc)
	}
	cl := cronLogger{logger: logger.With(slog.String("component", "scheduler"))}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(clock.Loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		plans:   plans,
		coach:   coach,
		owner:   owner,
		clock:   clock,
		metrics: m,
		logger:  cl.logger,
	}
	if cfg.DayInitSpec != "" {
		if _, err := s.cron.AddFunc(cfg.DayInitSpec, s.job(jobDayInit, s.RunDayInit)); err != nil {
			return nil, errors.New("invalid day init schedule: " + err.Error())
		}
	}
	if cfg.MorningCoachSpec != "" {
		if _, err := s.cron.AddFunc(cfg.MorningCoachSpec, s.job(jobMorningCoach, s.RunMorningCoach)); err != nil {
			return nil, errors.New("invalid morning coach schedule: " + err.Error())
		}
	}
	return s, nil
}

// Jobs reports how many schedules are registered.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Start runs the cron loop in background. Stopping is registered as a cleanup job
// that waits for running jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F: func() error {
			<-s.cron.Stop().Done()
			return nil
		},
	})
	s.logger.Info("scheduler started", slog.Int("jobs", s.Jobs()))
}

func (s *Scheduler) job(name string, run func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		err := run(ctx)
		s.metrics.ObserveSchedulerRun(name, err)
		if err != nil {
			s.logger.Error("scheduled job failed", slog.String("job", name), slog.String("error", err.Error()))
			return
		}
		s.logger.Info("scheduled job done", slog.String("job", name))
	}
}

// RunDayInit stores today's plan for the owner.
func (s *Scheduler) RunDayInit(ctx context.Context) error {
	_, err := s.plans.InitDay(ctx, s.owner, s.clock.Today())
	return err
}

// RunMorningCoach prepares today's morning message. Without a configured
// provider the run is a no-op.
func (s *Scheduler) RunMorningCoach(ctx context.Context) error {
	_, err := s.coach.MorningCoach(ctx, s.owner, s.clock.Today())
	if errors.Is(err, errorvalues.ErrCoachUnavailable) {
		s.logger.Info("morning coach skipped: provider is not configured")
		return nil
	}
	return err
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
