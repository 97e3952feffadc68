package ceremony

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/devpath/internal/curriculum"
)

// Validity is how long a certificate stays valid after issue.
const Validity = 365 * 24 * time.Hour

// Recommendations that are not a level name.
const (
	RecommendContinuePracticing = "continue-practicing"
	RecommendExpertLevel        = "expert-level"
)

// AdvanceScore is the minimum final score that recommends the next level.
const AdvanceScore = 85

// Certificate is an immutable record of a graduation.
type Certificate struct {
	ID           string           `json:"id"`
	SerialNumber string           `json:"serial_number"`
	Title        string           `json:"title"`
	LearnerID    string           `json:"learner_id,omitempty"`
	Language     string           `json:"language"`
	Level        curriculum.Level `json:"level"`
	IssueDate    time.Time        `json:"issue_date"`
	ValidUntil   time.Time        `json:"valid_until"`
	Score        int              `json:"score"`
	TimeSpent    int              `json:"time_spent"` // minutes
	Honor        Honor            `json:"honor"`
	Achievements []string         `json:"achievements"`
}

// Ceremony wraps a freshly minted certificate with what to do next.
type Ceremony struct {
	Certificate             Certificate `json:"certificate"`
	NextLevelRecommendation string      `json:"next_level_recommendation"`
	Celebration             string      `json:"celebration"`
}

// Generator mints certificates. It performs no I/O.
type Generator struct {
	now    func() time.Time
	serial func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the issue-time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSerialSource overrides the serial number source.
func WithSerialSource(serial func() string) Option {
	return func(g *Generator) { g.serial = serial }
}

// NewGenerator creates a generator using the wall clock and random UUIDs.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now, serial: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate mints a ceremony with the default generator.
func Generate(language string, level curriculum.Level, finalScore, timeSpent int, achievements []string) Ceremony {
	return defaultGenerator.Generate(language, level, finalScore, timeSpent, achievements)
}

// Generate mints a ceremony that is not bound to a learner.
func (g *Generator) Generate(language string, level curriculum.Level, finalScore, timeSpent int, achievements []string) Ceremony {
	return g.GenerateFor("", language, level, finalScore, timeSpent, achievements)
}

// GenerateFor mints a ceremony for the given learner.
func (g *Generator) GenerateFor(learnerID, language string, level curriculum.Level, finalScore, timeSpent int, achievements []string) Ceremony {
	lang := curriculum.NormalizeLanguage(language)
	issued := g.now().UTC()
	honor := HonorForScore(finalScore)

	cert := Certificate{
		ID:           fmt.Sprintf("cert-%s-%s-%d", lang, level, issued.UnixMilli()),
		SerialNumber: g.serial(),
		Title:        fmt.Sprintf("%s %s Graduate", curriculum.LanguageDisplayName(lang), level.DisplayName()),
		LearnerID:    learnerID,
		Language:     lang,
		Level:        level,
		IssueDate:    issued,
		ValidUntil:   issued.Add(Validity),
		Score:        finalScore,
		TimeSpent:    timeSpent,
		Honor:        honor,
		Achievements: slices.Clone(achievements),
	}
	if cert.Achievements == nil {
		cert.Achievements = []string{}
	}

	rec := Recommend(level, finalScore)
	return Ceremony{
		Certificate:             cert,
		NextLevelRecommendation: rec,
		Celebration:             celebration(cert, rec),
	}
}

// Recommend returns the next level name, "expert-level" for graduates of
// the last level, or "continue-practicing" below AdvanceScore.
func Recommend(level curriculum.Level, finalScore int) string {
	next, ok := level.Next()
	if !ok {
		return RecommendExpertLevel
	}
	if finalScore >= AdvanceScore {
		return string(next)
	}
	return RecommendContinuePracticing
}

func celebration(cert Certificate, rec string) string {
	msg := fmt.Sprintf("Congratulations! You graduated from %s %s",
		curriculum.LanguageDisplayName(cert.Language), cert.Level.DisplayName())
	if cert.Honor != HonorPass {
		msg += " with " + cert.Honor.DisplayName()
	}
	msg += "."

	switch rec {
	case RecommendExpertLevel:
		msg += " You have finished every level. Time to build something real."
	case RecommendContinuePracticing:
		msg += " Keep practicing to sharpen your skills before moving on."
	default:
		msg += fmt.Sprintf(" You are ready for %s.", curriculum.Level(rec).DisplayName())
	}
	return msg
}
