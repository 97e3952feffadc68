package curriculum

import "slices"

// Concept is an atomic curriculum unit within a learning path.
type Concept struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Order             int      `json:"order"`
	Prerequisites     []string `json:"prerequisites,omitempty"`
	EstimatedMins     int      `json:"estimated_mins"`
	ExercisesRequired int      `json:"exercises_required"`
	MasteryThreshold  int      `json:"mastery_threshold"` // percent
	Tags              []string `json:"tags,omitempty"`
}

// GraduationRequirements are the thresholds a learner must meet to graduate
// from a learning path.
type GraduationRequirements struct {
	ConceptsCompleted  int  `json:"concepts_completed"`
	ExercisesCompleted int  `json:"exercises_completed"`
	ProjectCompleted   bool `json:"project_completed"`
	MinimumScore       int  `json:"minimum_score"`
	TotalTimeMins      int  `json:"total_time_mins"`
	MasteryLevel       int  `json:"mastery_level"` // percent
}

// LearningPath is the ordered concept sequence plus graduation thresholds
// for one (language, level) pair.
type LearningPath struct {
	Language          string                 `json:"language"`
	Level             Level                  `json:"level"`
	Concepts          []Concept              `json:"concepts"`
	Requirements      GraduationRequirements `json:"requirements"`
	EstimatedDuration string                 `json:"estimated_duration"`
	Difficulty        string                 `json:"difficulty"`
}

// Key returns the catalog key of the path.
func (p LearningPath) Key() PathKey {
	return PathKey{Language: NormalizeLanguage(p.Language), Level: p.Level}
}

// TotalMins sums the estimated minutes of every concept in the path.
func (p LearningPath) TotalMins() int {
	total := 0
	for _, c := range p.Concepts {
		total += c.EstimatedMins
	}
	return total
}

// TotalExercises sums the exercises required across every concept.
func (p LearningPath) TotalExercises() int {
	total := 0
	for _, c := range p.Concepts {
		total += c.ExercisesRequired
	}
	return total
}

// ConceptIDs returns the concept ids in path order.
func (p LearningPath) ConceptIDs() []string {
	ids := make([]string, len(p.Concepts))
	for i, c := range p.Concepts {
		ids[i] = c.ID
	}
	return ids
}

// PathKey identifies a learning path in the catalog.
type PathKey struct {
	Language string
	Level    Level
}

func (k PathKey) String() string {
	return k.Language + "/" + string(k.Level)
}

func (c Concept) clone() Concept {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	c.Tags = slices.Clone(c.Tags)
	return c
}

func (p LearningPath) clone() LearningPath {
	concepts := make([]Concept, len(p.Concepts))
	for i, c := range p.Concepts {
		concepts[i] = c.clone()
	}
	p.Concepts = concepts
	return p
}
