package tutor

import "github.com/abhisek/devpath/internal/curriculum"

// Reply is the tutor's structured answer to a learner question.
type Reply struct {
	Answer           string   `json:"answer"`
	Hints            []string `json:"hints"`
	SuggestedConcept string   `json:"suggested_concept,omitempty"`
	Encouragement    string   `json:"encouragement"`
}

// Lesson is generated reading material for one concept.
type Lesson struct {
	Language  string
	Level     curriculum.Level
	ConceptID string
	Title     string
	Body      string // markdown
	Source    string // model that wrote it
}

// SeedResult summarizes a lesson seeding run.
type SeedResult struct {
	Written int
	Skipped int
	Failed  int
}
