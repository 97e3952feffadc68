package tutor

import "github.com/abhisek/devpath/internal/llm"

// ReplySchema constrains chat answers.
var ReplySchema = &llm.Schema{
	Name:        "tutor-reply",
	Description: "An answer to a programming learner's question with hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "Direct answer to the question (2-6 sentences, may include a short code snippet)",
			},
			"hints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
				"description": "Up to 3 hints that nudge the learner without giving away exercise solutions",
			},
			"suggested_concept": map[string]any{
				"type":        "string",
				"description": "ID of the concept from the path the learner should review, or empty",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One short encouraging sentence",
			},
		},
		"required":             []any{"answer", "hints", "suggested_concept", "encouragement"},
		"additionalProperties": false,
	},
}

// LessonSchema constrains generated lesson text.
var LessonSchema = &llm.Schema{
	Name:        "concept-lesson",
	Description: "Reading material that teaches one programming concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Lesson title (3-8 words)",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "What the concept is and when it is used (3-5 sentences)",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"maxItems":    6,
				"description": "Key facts to remember",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A short, runnable code example in the path's language",
			},
			"exercise": map[string]any{
				"type":        "string",
				"description": "One practice exercise the learner can attempt",
			},
		},
		"required":             []any{"title", "overview", "key_points", "example", "exercise"},
		"additionalProperties": false,
	},
}
