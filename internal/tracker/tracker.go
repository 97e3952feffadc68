// Package tracker owns the persisted counters that the progression
// evaluator trusts, and turns a ready learner into a certificate.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/abhisek/devpath/internal/achievements"
	"github.com/abhisek/devpath/internal/cache"
	"github.com/abhisek/devpath/internal/ceremony"
	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/progression"
	"github.com/abhisek/devpath/internal/store"
)

// Deps are the collaborators of a Service. Catalog, Progress and
// Certificates are required.
type Deps struct {
	Catalog      *curriculum.Catalog
	Progress     store.ProgressRepo
	Certificates store.CertificateRepo
	Events       store.EventRepo
	Cache        cache.StatusCache
	Ceremonies   *ceremony.Generator
	Logger       *slog.Logger
}

// Service records learner progress and graduates learners.
type Service struct {
	catalog    *curriculum.Catalog
	evaluator  *progression.Evaluator
	progress   store.ProgressRepo
	certs      store.CertificateRepo
	awards     *achievements.Service
	ceremonies *ceremony.Generator
	cache      cache.StatusCache
	logger     *slog.Logger

	// mu serializes read-modify-write of progress records.
	mu sync.Mutex
}

// NewService creates a tracker. Optional deps get defaults: the built-in
// catalog, no cache, a wall-clock ceremony generator and slog.Default.
func NewService(d Deps) *Service {
	if d.Catalog == nil {
		d.Catalog = curriculum.Default()
	}
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}
	if d.Ceremonies == nil {
		d.Ceremonies = ceremony.NewGenerator()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Service{
		catalog:    d.Catalog,
		evaluator:  progression.NewEvaluator(d.Catalog),
		progress:   d.Progress,
		certs:      d.Certificates,
		awards:     achievements.NewService(d.Events, d.Logger),
		ceremonies: d.Ceremonies,
		cache:      d.Cache,
		logger:     d.Logger,
	}
}

// LearnerStatus pairs a learner with a computed status.
type LearnerStatus struct {
	LearnerID string
	progression.Status
}

// Graduation is the outcome of a successful Graduate call.
type Graduation struct {
	Ceremony ceremony.Ceremony
	Awards   []achievements.Award
}

// Status returns the learner's status on a path, reading through the cache.
// An unknown path yields the evaluator's degraded status, not an error.
func (s *Service) Status(ctx context.Context, learnerID, language string, level curriculum.Level) (progression.Status, error) {
	if err := validateLearnerID(learnerID); err != nil {
		return progression.Status{}, err
	}
	key := cacheKey(learnerID, language, level)
	st, err := s.cache.Get(ctx, key)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("status cache read failed", "key", key.String(), "error", err)
	}

	// Held so a concurrent update cannot invalidate the key between this
	// read and the cache write below.
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.progress.Get(ctx, learnerID, curriculum.NormalizeLanguage(language), string(level))
	if err != nil {
		return progression.Status{}, fmt.Errorf("load progress: %w", err)
	}
	st = s.evaluate(language, level, rec)
	if st.PathFound() {
		s.storeCache(ctx, key, st)
	}
	return st, nil
}

// CompleteConcept marks a concept as completed. The concept must belong to
// the path and all its prerequisites must already be completed. Completing
// a concept twice is a no-op.
func (s *Service) CompleteConcept(ctx context.Context, learnerID, language string, level curriculum.Level, conceptID string) (progression.Status, error) {
	return s.update(ctx, learnerID, language, level, func(rec *store.ProgressRecord) error {
		if _, err := s.catalog.Concept(language, level, conceptID); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownConcept, conceptID)
		}

		done := make(map[string]bool, len(rec.CompletedConcepts))
		for _, id := range rec.CompletedConcepts {
			done[id] = true
		}
		if done[conceptID] {
			return nil
		}

		if !s.catalog.CanAccess(language, level, conceptID, done) {
			var missing []string
			for _, p := range s.catalog.Prerequisites(language, level, conceptID) {
				if !done[p.ID] {
					missing = append(missing, p.ID)
				}
			}
			return fmt.Errorf("%w: %s requires %s", ErrConceptLocked, conceptID, strings.Join(missing, ", "))
		}

		rec.CompletedConcepts = append(rec.CompletedConcepts, conceptID)
		return nil
	})
}

// RecordExercises adds count completed exercises.
func (s *Service) RecordExercises(ctx context.Context, learnerID, language string, level curriculum.Level, count int) (progression.Status, error) {
	if count <= 0 {
		return progression.Status{}, fmt.Errorf("%w: exercise count must be positive, got %d", ErrInvalidInput, count)
	}
	return s.update(ctx, learnerID, language, level, func(rec *store.ProgressRecord) error {
		rec.ExercisesCompleted += count
		return nil
	})
}

// RecordTime adds minutes of study time.
func (s *Service) RecordTime(ctx context.Context, learnerID, language string, level curriculum.Level, minutes int) (progression.Status, error) {
	if minutes <= 0 {
		return progression.Status{}, fmt.Errorf("%w: minutes must be positive, got %d", ErrInvalidInput, minutes)
	}
	return s.update(ctx, learnerID, language, level, func(rec *store.ProgressRecord) error {
		rec.TotalTimeSpent += minutes
		return nil
	})
}

// CompleteProject marks the path's final project as submitted.
func (s *Service) CompleteProject(ctx context.Context, learnerID, language string, level curriculum.Level) (progression.Status, error) {
	return s.update(ctx, learnerID, language, level, func(rec *store.ProgressRecord) error {
		rec.ProjectCompleted = true
		return nil
	})
}

// Graduate mints and stores a certificate when the learner meets every
// requirement, and records the achievements earned along the way.
func (s *Service) Graduate(ctx context.Context, learnerID, language string, level curriculum.Level) (*Graduation, error) {
	if err := validateLearnerID(learnerID); err != nil {
		return nil, err
	}
	lang := curriculum.NormalizeLanguage(language)
	if _, ok := s.catalog.Path(lang, level); !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownPath, lang, level)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.progress.Get(ctx, learnerID, lang, string(level))
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	st := s.evaluate(lang, level, rec)
	if !st.IsReadyForGraduation {
		return nil, fmt.Errorf("%w: %s", ErrNotReady, strings.Join(st.NextSteps, "; "))
	}

	existing, err := s.certs.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load certificates: %w", err)
	}
	var prior []string
	for _, c := range existing {
		if c.Language == lang && c.Level == string(level) {
			return nil, fmt.Errorf("%w: certificate %s", ErrAlreadyGraduated, c.ID)
		}
		prior = append(prior, c.Language)
	}

	awards := achievements.Evaluate(st, prior)
	cer := s.ceremonies.GenerateFor(learnerID, lang, level, st.GraduationScore, st.TotalTimeSpent, achievements.Names(awards))

	if err := s.certs.Save(ctx, certificateRecord(cer)); err != nil {
		return nil, fmt.Errorf("save certificate: %w", err)
	}
	awards = s.awards.Record(ctx, learnerID, cer.Certificate.ID, awards)

	s.logger.Info("learner graduated",
		"learner", learnerID,
		"path", lang+"/"+string(level),
		"certificate", cer.Certificate.ID,
		"score", cer.Certificate.Score,
		"achievements", len(awards),
	)
	return &Graduation{Ceremony: cer, Awards: awards}, nil
}

// Certificates returns a learner's certificates, oldest first.
func (s *Service) Certificates(ctx context.Context, learnerID string) ([]ceremony.Ceremony, error) {
	recs, err := s.certs.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	out := make([]ceremony.Ceremony, len(recs))
	for i, r := range recs {
		out[i] = ceremony.Ceremony{
			Certificate: ceremony.Certificate{
				ID:           r.ID,
				SerialNumber: r.SerialNumber,
				Title:        r.Title,
				LearnerID:    r.LearnerID,
				Language:     r.Language,
				Level:        curriculum.Level(r.Level),
				IssueDate:    r.IssueDate,
				ValidUntil:   r.ValidUntil,
				Score:        r.Score,
				TimeSpent:    r.TimeSpent,
				Honor:        ceremony.Honor(r.Honor),
				Achievements: r.Achievements,
			},
			NextLevelRecommendation: r.NextLevelRecommendation,
		}
	}
	return out, nil
}

// Achievements returns a learner's stored awards, newest first.
func (s *Service) Achievements(ctx context.Context, learnerID string) ([]achievements.Award, error) {
	return s.awards.List(ctx, learnerID)
}

// AllStatuses recomputes every stored progress record and refreshes the
// cache with the result.
func (s *Service) AllStatuses(ctx context.Context) ([]LearnerStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.progress.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]LearnerStatus, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		level := curriculum.Level(rec.Level)
		st := s.evaluate(rec.Language, level, rec)
		if st.PathFound() {
			s.storeCache(ctx, cacheKey(rec.LearnerID, rec.Language, level), st)
		}
		out = append(out, LearnerStatus{LearnerID: rec.LearnerID, Status: st})
	}
	return out, nil
}

// update applies fn to the learner's progress record under the lock,
// saves it, drops the cached status and returns the new status.
func (s *Service) update(ctx context.Context, learnerID, language string, level curriculum.Level, fn func(*store.ProgressRecord) error) (progression.Status, error) {
	if err := validateLearnerID(learnerID); err != nil {
		return progression.Status{}, err
	}
	lang := curriculum.NormalizeLanguage(language)
	if _, ok := s.catalog.Path(lang, level); !ok {
		return progression.Status{}, fmt.Errorf("%w: %s/%s", ErrUnknownPath, lang, level)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.progress.Get(ctx, learnerID, lang, string(level))
	if err != nil {
		return progression.Status{}, fmt.Errorf("load progress: %w", err)
	}
	if rec == nil {
		rec = &store.ProgressRecord{LearnerID: learnerID, Language: lang, Level: string(level)}
	}

	if err := fn(rec); err != nil {
		return progression.Status{}, err
	}
	if err := s.progress.Save(ctx, rec); err != nil {
		return progression.Status{}, fmt.Errorf("save progress: %w", err)
	}

	key := cacheKey(learnerID, lang, level)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("status cache invalidate failed", "key", key.String(), "error", err)
	}

	st := s.evaluate(lang, level, rec)
	s.logger.Debug("progress updated",
		"learner", learnerID,
		"path", lang+"/"+string(level),
		"mastery", st.MasteryLevel,
		"ready", st.IsReadyForGraduation,
	)
	return st, nil
}

func (s *Service) evaluate(language string, level curriculum.Level, rec *store.ProgressRecord) progression.Status {
	in := progression.Input{Language: language, Level: level}
	if rec != nil {
		in.CompletedConcepts = rec.CompletedConcepts
		in.ExercisesCompleted = rec.ExercisesCompleted
		in.ProjectCompleted = rec.ProjectCompleted
		in.TotalTimeSpent = rec.TotalTimeSpent
	}
	return s.evaluator.Calculate(in)
}

func (s *Service) storeCache(ctx context.Context, key cache.Key, st progression.Status) {
	if err := s.cache.Set(ctx, key, st); err != nil {
		s.logger.Warn("status cache write failed", "key", key.String(), "error", err)
	}
}

// validateLearnerID rejects empty IDs and IDs containing the separators
// used in cache and sweeper keys.
func validateLearnerID(learnerID string) error {
	if learnerID == "" {
		return fmt.Errorf("%w: learner id is required", ErrInvalidInput)
	}
	if strings.ContainsAny(learnerID, ":/") {
		return fmt.Errorf("%w: learner id %q must not contain ':' or '/'", ErrInvalidInput, learnerID)
	}
	return nil
}

func cacheKey(learnerID, language string, level curriculum.Level) cache.Key {
	return cache.Key{
		LearnerID: learnerID,
		Language:  curriculum.NormalizeLanguage(language),
		Level:     string(level),
	}
}

func certificateRecord(c ceremony.Ceremony) *store.CertificateRecord {
	cert := c.Certificate
	return &store.CertificateRecord{
		ID:                      cert.ID,
		SerialNumber:            cert.SerialNumber,
		Title:                   cert.Title,
		LearnerID:               cert.LearnerID,
		Language:                cert.Language,
		Level:                   string(cert.Level),
		IssueDate:               cert.IssueDate,
		ValidUntil:              cert.ValidUntil,
		Score:                   cert.Score,
		TimeSpent:               cert.TimeSpent,
		Honor:                   string(cert.Honor),
		Achievements:            cert.Achievements,
		NextLevelRecommendation: c.NextLevelRecommendation,
	}
}
