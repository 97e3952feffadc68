// Package scheduler runs the periodic graduation-readiness sweep.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/tracker"
)

// StatusLister recomputes the status of every tracked learner path.
type StatusLister interface {
	AllStatuses(ctx context.Context) ([]tracker.LearnerStatus, error)
}

// Notifier is told about learners that became ready to graduate.
type Notifier interface {
	NotifyReady(ctx context.Context, st tracker.LearnerStatus) error
}

// Result summarizes one sweep.
type Result struct {
	Checked    int
	Ready      int
	NewlyReady []tracker.LearnerStatus
}

// Sweeper periodically recomputes all statuses and reports learners that
// crossed the graduation threshold since the previous sweep.
type Sweeper struct {
	lister   StatusLister
	notifier Notifier
	interval time.Duration
	logger   *slog.Logger

	scheduler *gocron.Scheduler

	mu    sync.Mutex
	ready map[pathKey]bool
}

// pathKey identifies one learner on one learning path.
type pathKey struct {
	learner  string
	language string
	level    curriculum.Level
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithNotifier sets the notifier called for each newly ready learner.
func WithNotifier(n Notifier) Option {
	return func(s *Sweeper) { s.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sweeper) { s.logger = l }
}

// NewSweeper creates a sweeper that runs every interval once started.
func NewSweeper(lister StatusLister, interval time.Duration, opts ...Option) *Sweeper {
	s := &Sweeper{
		lister:    lister,
		interval:  interval,
		logger:    slog.Default(),
		scheduler: gocron.NewScheduler(time.UTC),
		ready:     make(map[pathKey]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start schedules the sweep and returns immediately. The first sweep runs
// right away.
func (s *Sweeper) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", s.interval)
	}
	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.ErrorContext(ctx, "sweep failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.InfoContext(ctx, "sweeper started", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

// RunOnce performs a single sweep.
func (s *Sweeper) RunOnce(ctx context.Context) (Result, error) {
	statuses, err := s.lister.AllStatuses(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list statuses: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := Result{Checked: len(statuses)}
	seen := make(map[pathKey]bool, len(statuses))
	for _, st := range statuses {
		key := pathKey{learner: st.LearnerID, language: st.Language, level: st.Level}
		if !st.IsReadyForGraduation {
			continue
		}
		res.Ready++
		seen[key] = true
		if s.ready[key] {
			continue
		}
		res.NewlyReady = append(res.NewlyReady, st)
		s.logger.InfoContext(ctx, "learner ready to graduate",
			"learner", st.LearnerID, "language", st.Language, "level", st.Level,
			"score", st.GraduationScore)
		if s.notifier != nil {
			if err := s.notifier.NotifyReady(ctx, st); err != nil {
				s.logger.WarnContext(ctx, "ready notification failed", "learner", st.LearnerID, "error", err)
			}
		}
	}
	s.ready = seen

	s.logger.DebugContext(ctx, "sweep complete", "checked", res.Checked, "ready", res.Ready, "new", len(res.NewlyReady))
	return res, nil
}
