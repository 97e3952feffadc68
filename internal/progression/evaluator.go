package progression

import (
	"fmt"
	"math"

	"github.com/abhisek/devpath/internal/curriculum"
)

// Evaluator computes progression statuses against a catalog.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	catalog *curriculum.Catalog
}

// NewEvaluator creates an evaluator over the given catalog.
func NewEvaluator(catalog *curriculum.Catalog) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Calculate computes the status for in using the built-in catalog.
func Calculate(in Input) Status {
	return NewEvaluator(curriculum.Default()).Calculate(in)
}

// Calculate maps a learner's recorded progress to a Status. An unknown
// (language, level) pair yields a degraded zero status, never an error.
func (e *Evaluator) Calculate(in Input) Status {
	lang := curriculum.NormalizeLanguage(in.Language)
	exercises := max(in.ExercisesCompleted, 0)
	minutes := max(in.TotalTimeSpent, 0)

	path, ok := e.catalog.Path(lang, in.Level)
	if !ok {
		return Status{
			Language:           lang,
			Level:              in.Level,
			CurrentConcept:     CurrentConceptUnknown,
			CompletedConcepts:  []string{},
			IgnoredConcepts:    dedupe(in.CompletedConcepts),
			ExercisesCompleted: exercises,
			ProjectCompleted:   in.ProjectCompleted,
			TotalTimeSpent:     minutes,
			NextSteps:          []string{MsgPathNotFound},
		}
	}

	completed, ignored := partition(path, in.CompletedConcepts)
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	req := path.Requirements
	s := Status{
		Language:           lang,
		Level:              in.Level,
		CompletedConcepts:  completed,
		IgnoredConcepts:    ignored,
		ExercisesCompleted: exercises,
		ProjectCompleted:   in.ProjectCompleted,
		TotalTimeSpent:     minutes,
		Requirements:       req,
	}

	s.CurrentConcept = CurrentConceptCompleted
	if next, ok := e.catalog.NextAvailable(lang, in.Level, done); ok {
		s.CurrentConcept = next.ID
	}

	s.ConceptProgress = percent(len(completed), len(path.Concepts))
	s.ExerciseProgress = percent(exercises, req.ExercisesCompleted)
	s.TimeProgress = percent(minutes, req.TotalTimeMins)
	s.MasteryLevel = int(math.Round((s.ConceptProgress + s.ExerciseProgress + s.TimeProgress) / 3))

	s.IsReadyForGraduation = len(completed) >= req.ConceptsCompleted &&
		exercises >= req.ExercisesCompleted &&
		in.ProjectCompleted &&
		s.MasteryLevel >= req.MasteryLevel

	score := ConceptWeight*s.ConceptProgress + ExerciseWeight*s.ExerciseProgress + TimeWeight*s.TimeProgress
	if in.ProjectCompleted {
		score += ProjectBonus
	}
	s.GraduationScore = int(math.Round(score))

	s.NextSteps = nextSteps(path, s)

	if !s.IsReadyForGraduation {
		remainingConcepts := max(req.ConceptsCompleted-len(completed), 0)
		remainingExercises := max(req.ExercisesCompleted-exercises, 0)
		avg := e.catalog.AverageConceptMins(lang, in.Level)
		s.EstimatedTimeToGraduation = remainingConcepts*avg + remainingExercises*MinutesPerExercise
	}

	return s
}

// nextSteps lists unmet requirements in a fixed order: concepts, exercises,
// project, mastery.
func nextSteps(path curriculum.LearningPath, s Status) []string {
	if s.IsReadyForGraduation {
		return []string{MsgReady}
	}

	req := path.Requirements
	var steps []string

	if n := req.ConceptsCompleted - len(s.CompletedConcepts); n > 0 {
		step := fmt.Sprintf("Complete %d more %s", n, plural(n, "concept"))
		for _, c := range path.Concepts {
			if c.ID == s.CurrentConcept {
				step += fmt.Sprintf(" (next up: %s)", c.Title)
				break
			}
		}
		steps = append(steps, step)
	}
	if n := req.ExercisesCompleted - s.ExercisesCompleted; n > 0 {
		steps = append(steps, fmt.Sprintf("Complete %d more %s", n, plural(n, "exercise")))
	}
	// Readiness always requires the project, whatever the path's flag says.
	if !s.ProjectCompleted {
		steps = append(steps, "Build and submit the final project")
	}
	if s.MasteryLevel < req.MasteryLevel {
		steps = append(steps, fmt.Sprintf("Raise your mastery level to %d%% (currently %d%%)", req.MasteryLevel, s.MasteryLevel))
	}
	return steps
}

// partition splits ids into de-duplicated path members, in path order, and
// everything else in input order.
func partition(path curriculum.LearningPath, ids []string) (completed, ignored []string) {
	given := make(map[string]int, len(ids))
	for _, id := range ids {
		given[id]++
	}

	completed = []string{}
	member := make(map[string]bool, len(path.Concepts))
	for _, c := range path.Concepts {
		member[c.ID] = true
		if given[c.ID] > 0 {
			completed = append(completed, c.ID)
		}
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !member[id] || seen[id] {
			ignored = append(ignored, id)
		}
		seen[id] = true
	}
	return completed, ignored
}

func dedupe(ids []string) []string {
	var out []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// percent returns part/whole*100 clamped to [0, 100]. A zero whole counts
// as fully met.
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 100
	}
	p := float64(part) / float64(whole) * 100
	return math.Min(math.Max(p, 0), 100)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
