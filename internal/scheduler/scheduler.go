package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Minute

// Job is one periodic task. Run gets a context that is cancelled after
// Timeout or when the scheduler stops.
type Job struct {
	Name           string
	Interval       time.Duration
	Timeout        time.Duration
	RunImmediately bool
	Run            func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []Job
	logger zerolog.Logger
}

func NewScheduler(logger zerolog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:   jobs,
		logger: logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start runs the jobs until ctx is cancelled, then waits for running jobs to
// return. A failing or panicking run is logged and the job keeps its schedule;
// a run that would overlap the previous one is skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		return errors.New("no jobs to schedule")
	}

	clog := cronLogger{l: s.logger}
	// SkipIfStillRunning must wrap Recover, or a panic leaks its run token.
	chain := cron.NewChain(cron.SkipIfStillRunning(clog), cron.Recover(clog))
	c := cron.New(cron.WithLogger(clog))

	var immediate []cron.Job
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			return fmt.Errorf("job %s: interval must be positive", job.Name)
		}
		wrapped := chain.Then(s.cronJob(ctx, job))
		c.Schedule(cron.Every(job.Interval), wrapped)
		if job.RunImmediately {
			immediate = append(immediate, wrapped)
		}
		s.logger.Info().
			Str("job", job.Name).
			Dur("interval", job.Interval).
			Msg("job scheduled")
	}

	c.Start()
	var wg sync.WaitGroup
	for _, j := range immediate {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.Run()
		}()
	}

	s.logger.Info().Int("jobs", len(s.jobs)).Msg("scheduler started")
	<-ctx.Done()

	<-c.Stop().Done()
	wg.Wait()
	s.logger.Info().Msg("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) cronJob(ctx context.Context, job Job) cron.FuncJob {
	return func() {
		if ctx.Err() != nil {
			return
		}
		s.runOnce(ctx, job)
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(runCtx); err != nil {
		s.logger.Error().
			Err(err).
			Str("job", job.Name).
			Dur("duration", time.Since(start)).
			Msg("job failed")
		return
	}
	s.logger.Debug().
		Str("job", job.Name).
		Dur("duration", time.Since(start)).
		Msg("job finished")
}

// cronLogger routes cron's own messages (skips, recovered panics) to zerolog.
type cronLogger struct {
	l zerolog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
