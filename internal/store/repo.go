package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressRecord is the persisted counter set for one learner on one
// learning path. These are the inputs the progression evaluator trusts.
type ProgressRecord struct {
	LearnerID          string
	Language           string
	Level              string
	CompletedConcepts  []string
	ExercisesCompleted int
	ProjectCompleted   bool
	TotalTimeSpent     int // minutes
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProgressRepo persists learner progress counters.
type ProgressRepo interface {
	// Get returns the record for (learner, language, level), or nil if none.
	Get(ctx context.Context, learnerID, language, level string) (*ProgressRecord, error)

	// Save inserts or replaces the record.
	Save(ctx context.Context, rec *ProgressRecord) error

	// ListByLearner returns every path the learner has started.
	ListByLearner(ctx context.Context, learnerID string) ([]ProgressRecord, error)

	// List returns every progress record ordered by learner, language, level.
	List(ctx context.Context) ([]ProgressRecord, error)
}

// CertificateRecord is a stored graduation certificate.
type CertificateRecord struct {
	ID                      string
	SerialNumber            string
	Title                   string
	LearnerID               string
	Language                string
	Level                   string
	IssueDate               time.Time
	ValidUntil              time.Time
	Score                   int
	TimeSpent               int
	Honor                   string
	Achievements            []string
	NextLevelRecommendation string
}

// CertificateRepo stores certificates. Certificates are never updated and
// are keyed by serial number; the display ID may repeat across learners.
type CertificateRepo interface {
	// Save inserts a new certificate. Saving an existing serial is an error.
	Save(ctx context.Context, rec *CertificateRecord) error

	// Get returns a certificate by serial number, or nil if not found.
	Get(ctx context.Context, serial string) (*CertificateRecord, error)

	// ListByLearner returns a learner's certificates, oldest first.
	ListByLearner(ctx context.Context, learnerID string) ([]CertificateRecord, error)
}

// LessonRecord is generated or authored lesson text for one concept.
type LessonRecord struct {
	Language  string
	Level     string
	ConceptID string
	Title     string
	Body      string
	Source    string // model ID or "manual"
	UpdatedAt time.Time
}

// LessonRepo stores lesson text keyed by concept.
type LessonRepo interface {
	// Put inserts or replaces lesson text.
	Put(ctx context.Context, rec *LessonRecord) error

	// Get returns the lesson for a concept, or nil if none.
	Get(ctx context.Context, language, level, conceptID string) (*LessonRecord, error)

	// List returns lessons for a language (all languages if empty).
	List(ctx context.Context, language string) ([]LessonRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose or model.
type LLMUsageStats struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AchievementEventData captures an awarded achievement.
type AchievementEventData struct {
	LearnerID     string
	Kind          string
	Rarity        string
	Language      string
	Level         string
	CertificateID string
	Reason        string
}

// AchievementEventRecord is a stored achievement event.
type AchievementEventRecord struct {
	AchievementEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStats, error)

	// AppendAchievementEvent records an awarded achievement.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// QueryAchievementEvents returns a learner's achievements, newest first.
	QueryAchievementEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]AchievementEventRecord, error)

	// AchievementCounts returns a learner's achievement counts by kind and total.
	AchievementCounts(ctx context.Context, learnerID string) (map[string]int, int, error)
}
