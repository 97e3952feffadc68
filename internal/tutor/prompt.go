package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/progression"
)

const askSystemPrompt = `You are a friendly programming tutor on an e-learning platform. You answer questions from a learner who is working through a structured learning path. Keep answers short and practical, and never hand out complete solutions to graded exercises.`

func buildAskUserMessage(path curriculum.LearningPath, status progression.Status, question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learning path: %s %s\n",
		curriculum.LanguageDisplayName(path.Language), path.Level.DisplayName())

	completed := make(map[string]bool, len(status.CompletedConcepts))
	for _, id := range status.CompletedConcepts {
		completed[id] = true
	}

	b.WriteString("\nConcepts (id: title):\n")
	for _, c := range path.Concepts {
		mark := " "
		switch {
		case completed[c.ID]:
			mark = "x"
		case c.ID == status.CurrentConcept:
			mark = ">"
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", mark, c.ID, c.Title)
	}

	fmt.Fprintf(&b, "\nMastery: %d%% (target %d%%)\n", status.MasteryLevel, path.Requirements.MasteryLevel)
	fmt.Fprintf(&b, "Exercises completed: %d of %d\n", status.ExercisesCompleted, path.Requirements.ExercisesCompleted)
	if len(status.NextSteps) > 0 {
		b.WriteString("Next steps:\n")
		for _, s := range status.NextSteps {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	fmt.Fprintf(&b, "\nQuestion:\n%s\n", strings.TrimSpace(question))

	b.WriteString(`
Instructions:
1. Answer the question for this learner's level. Use the path's language for any code.
2. Give up to 3 hints that help the learner find the rest on their own.
3. If a concept from the list above would help, put its id in suggested_concept. Otherwise leave it empty.
4. End with one short encouraging sentence.`)

	return b.String()
}

const lessonSystemPrompt = `You are writing lesson material for a self-paced programming course. Lessons are concise, accurate and use idiomatic code for the language being taught.`

func buildLessonUserMessage(path curriculum.LearningPath, concept curriculum.Concept) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Course: %s %s\n",
		curriculum.LanguageDisplayName(path.Language), path.Level.DisplayName())
	fmt.Fprintf(&b, "Concept: %s\n", concept.Title)
	fmt.Fprintf(&b, "Description: %s\n", concept.Description)
	fmt.Fprintf(&b, "Estimated study time: %d minutes\n", concept.EstimatedMins)

	if len(concept.Prerequisites) > 0 {
		b.WriteString("Learners already know:\n")
		for _, id := range concept.Prerequisites {
			title := id
			for _, c := range path.Concepts {
				if c.ID == id {
					title = c.Title
					break
				}
			}
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}

	b.WriteString(`
Instructions:
Write a lesson that:
1. Explains the concept in 3-5 sentences.
2. Lists the key points to remember.
3. Shows one short code example that runs as-is.
4. Ends with one practice exercise that only needs this concept and the ones listed as known.`)

	return b.String()
}

type lessonOutput struct {
	Title     string   `json:"title"`
	Overview  string   `json:"overview"`
	KeyPoints []string `json:"key_points"`
	Example   string   `json:"example"`
	Exercise  string   `json:"exercise"`
}

// markdown renders a generated lesson as the stored lesson body.
func (o lessonOutput) markdown(language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", o.Title, o.Overview)
	if len(o.KeyPoints) > 0 {
		b.WriteString("## Key points\n\n")
		for _, p := range o.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "## Example\n\n```%s\n%s\n```\n\n", language, strings.TrimRight(o.Example, "\n"))
	fmt.Fprintf(&b, "## Try it\n\n%s\n", o.Exercise)
	return b.String()
}
