package achievements

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/devpath/internal/progression"
	"github.com/abhisek/devpath/internal/store"
)

// Service awards achievements and records them as events.
type Service struct {
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// NewService creates an achievement service. eventRepo may be nil, in which
// case awards are computed but not stored.
func NewService(eventRepo store.EventRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{eventRepo: eventRepo, logger: logger}
}

// Award evaluates and persists the achievements earned by a graduation.
func (s *Service) Award(ctx context.Context, learnerID, certificateID string, status progression.Status, priorLanguages []string) []Award {
	return s.Record(ctx, learnerID, certificateID, Evaluate(status, priorLanguages))
}

// Record stamps precomputed awards with the learner and stores them.
func (s *Service) Record(ctx context.Context, learnerID, certificateID string, awards []Award) []Award {
	now := time.Now()
	for i := range awards {
		awards[i].LearnerID = learnerID
		awards[i].AwardedAt = now
		s.persist(ctx, certificateID, awards[i])
	}
	return awards
}

// List returns a learner's stored awards, newest first.
func (s *Service) List(ctx context.Context, learnerID string) ([]Award, error) {
	if s.eventRepo == nil {
		return nil, nil
	}
	events, err := s.eventRepo.QueryAchievementEvents(ctx, learnerID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	awards := make([]Award, len(events))
	for i, e := range events {
		awards[i] = Award{
			Kind:      Kind(e.Kind),
			Rarity:    Rarity(e.Rarity),
			LearnerID: e.LearnerID,
			Language:  e.Language,
			Level:     e.Level,
			Reason:    e.Reason,
			AwardedAt: e.Timestamp,
		}
	}
	return awards, nil
}

func (s *Service) persist(ctx context.Context, certificateID string, award Award) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendAchievementEvent(ctx, store.AchievementEventData{
		LearnerID:     award.LearnerID,
		Kind:          string(award.Kind),
		Rarity:        string(award.Rarity),
		Language:      award.Language,
		Level:         award.Level,
		CertificateID: certificateID,
		Reason:        award.Reason,
	})
	if err != nil {
		s.logger.Warn("failed to record achievement",
			"learner", award.LearnerID, "kind", award.Kind, "error", err)
	}
}
