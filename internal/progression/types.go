package progression

import "github.com/abhisek/devpath/internal/curriculum"

// Sentinel values for Status.CurrentConcept.
const (
	CurrentConceptCompleted = "completed"
	CurrentConceptUnknown   = "unknown"
)

// MsgPathNotFound is the only next step reported for an unknown path.
const MsgPathNotFound = "Learning path not found"

// MsgReady replaces the next-step list once every requirement is met.
const MsgReady = "Ready for graduation! Request your certificate."

// MinutesPerExercise is the fixed time estimate for one remaining exercise.
const MinutesPerExercise = 15

// Graduation score weights. The project bonus is added on top.
const (
	ConceptWeight  = 0.4
	ExerciseWeight = 0.3
	TimeWeight     = 0.2
	ProjectBonus   = 10
)

// Input is the caller-supplied progress for one learner on one path.
type Input struct {
	Language           string
	Level              curriculum.Level
	CompletedConcepts  []string
	ExercisesCompleted int
	ProjectCompleted   bool
	TotalTimeSpent     int // minutes
}

// Status is the derived progression snapshot. It is recomputed on every
// call and never persisted.
type Status struct {
	Language           string           `json:"language"`
	Level              curriculum.Level `json:"level"`
	CurrentConcept     string           `json:"current_concept"`
	CompletedConcepts  []string         `json:"completed_concepts"`
	IgnoredConcepts    []string         `json:"ignored_concepts,omitempty"`
	ExercisesCompleted int              `json:"exercises_completed"`
	ProjectCompleted   bool             `json:"project_completed"`
	TotalTimeSpent     int              `json:"total_time_spent"`

	ConceptProgress  float64 `json:"concept_progress"`
	ExerciseProgress float64 `json:"exercise_progress"`
	TimeProgress     float64 `json:"time_progress"`

	MasteryLevel              int      `json:"mastery_level"`
	IsReadyForGraduation      bool     `json:"is_ready_for_graduation"`
	GraduationScore           int      `json:"graduation_score"`
	NextSteps                 []string `json:"next_steps"`
	EstimatedTimeToGraduation int      `json:"estimated_time_to_graduation"` // minutes

	Requirements curriculum.GraduationRequirements `json:"requirements"`
}

// PathFound reports whether the status was computed against a known path.
func (s Status) PathFound() bool {
	return s.CurrentConcept != CurrentConceptUnknown
}
