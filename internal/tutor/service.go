package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/llm"
	"github.com/abhisek/devpath/internal/progression"
	"github.com/abhisek/devpath/internal/store"
)

// ErrEmptyQuestion is returned by Ask for blank questions.
var ErrEmptyQuestion = errors.New("question is empty")

// Service answers learner questions and writes lesson text using an LLM.
type Service struct {
	provider llm.Provider
	catalog  *curriculum.Catalog
	cfg      Config
	logger   *slog.Logger
}

// NewService creates a tutor. A nil catalog uses the built-in one.
func NewService(provider llm.Provider, catalog *curriculum.Catalog, cfg Config, logger *slog.Logger) *Service {
	if catalog == nil {
		catalog = curriculum.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, catalog: catalog, cfg: cfg, logger: logger}
}

// Ask answers a question in the context of the learner's status on a path.
func (s *Service) Ask(ctx context.Context, status progression.Status, question string) (*Reply, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}
	path, ok := s.catalog.Path(status.Language, status.Level)
	if !ok {
		return nil, fmt.Errorf("learning path not found: %s/%s", status.Language, status.Level)
	}

	req := llm.NewRequest(askSystemPrompt, buildAskUserMessage(path, status, question), ReplySchema)
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature

	var reply Reply
	if err := s.generate(llm.WithPurpose(ctx, llm.PurposeTutorAnswer), req, &reply); err != nil {
		return nil, fmt.Errorf("tutor answer: %w", err)
	}

	// Only suggest concepts that exist on this path.
	if reply.SuggestedConcept != "" {
		if _, err := s.catalog.Concept(path.Language, path.Level, reply.SuggestedConcept); err != nil {
			s.logger.DebugContext(ctx, "dropping unknown suggested concept", "concept", reply.SuggestedConcept)
			reply.SuggestedConcept = ""
		}
	}
	if reply.Hints == nil {
		reply.Hints = []string{}
	}
	return &reply, nil
}

// WriteLesson generates lesson text for one concept.
func (s *Service) WriteLesson(ctx context.Context, language string, level curriculum.Level, conceptID string) (*Lesson, error) {
	path, ok := s.catalog.Path(language, level)
	if !ok {
		return nil, fmt.Errorf("learning path not found: %s/%s", curriculum.NormalizeLanguage(language), level)
	}
	concept, err := s.catalog.Concept(language, level, conceptID)
	if err != nil {
		return nil, err
	}

	req := llm.NewRequest(lessonSystemPrompt, buildLessonUserMessage(path, concept), LessonSchema)
	req.MaxTokens = s.cfg.LessonMaxTokens
	req.Temperature = s.cfg.Temperature

	var out lessonOutput
	if err := s.generate(llm.WithPurpose(ctx, llm.PurposeLessonWrite), req, &out); err != nil {
		return nil, fmt.Errorf("lesson for %s: %w", conceptID, err)
	}

	return &Lesson{
		Language:  path.Language,
		Level:     path.Level,
		ConceptID: concept.ID,
		Title:     out.Title,
		Body:      out.markdown(path.Language),
		Source:    s.provider.ModelID(),
	}, nil
}

// SeedLessons writes lesson text for every concept that has none in repo.
// An empty language seeds every path. Failures on single concepts are
// logged and counted; the returned error joins them.
func (s *Service) SeedLessons(ctx context.Context, repo store.LessonRepo, language string) (SeedResult, error) {
	var res SeedResult
	var errs []error

	lang := curriculum.NormalizeLanguage(language)
	for _, path := range s.catalog.Paths() {
		if lang != "" && path.Language != lang {
			continue
		}
		for _, concept := range path.Concepts {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			existing, err := repo.Get(ctx, path.Language, string(path.Level), concept.ID)
			if err != nil {
				return res, fmt.Errorf("lookup lesson %s: %w", concept.ID, err)
			}
			if existing != nil {
				res.Skipped++
				continue
			}

			lesson, err := s.WriteLesson(ctx, path.Language, path.Level, concept.ID)
			if err != nil {
				s.logger.WarnContext(ctx, "lesson generation failed", "concept", concept.ID, "error", err)
				res.Failed++
				errs = append(errs, err)
				continue
			}

			if err := repo.Put(ctx, &store.LessonRecord{
				Language:  lesson.Language,
				Level:     string(lesson.Level),
				ConceptID: lesson.ConceptID,
				Title:     lesson.Title,
				Body:      lesson.Body,
				Source:    lesson.Source,
			}); err != nil {
				return res, fmt.Errorf("save lesson %s: %w", concept.ID, err)
			}
			s.logger.InfoContext(ctx, "lesson written", "language", lesson.Language, "level", lesson.Level, "concept", lesson.ConceptID)
			res.Written++
		}
	}

	return res, errors.Join(errs...)
}

func (s *Service) generate(ctx context.Context, req llm.Request, out any) error {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
