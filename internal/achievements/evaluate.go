package achievements

import (
	"fmt"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/progression"
)

// PracticeMultiplier is how many times the required exercises a learner
// must complete for Practice Makes Perfect.
const PracticeMultiplier = 1.5

// PolyglotLanguages is the number of distinct graduated languages for Polyglot.
const PolyglotLanguages = 2

// Evaluate returns the achievements earned by graduating with status.
// priorLanguages lists languages the learner already holds certificates
// for. A status that is not ready for graduation earns nothing.
func Evaluate(status progression.Status, priorLanguages []string) []Award {
	if !status.IsReadyForGraduation {
		return nil
	}

	req := status.Requirements
	path := fmt.Sprintf("%s %s", curriculum.LanguageDisplayName(status.Language), status.Level.DisplayName())
	var awards []Award
	add := func(kind Kind, reason string) {
		awards = append(awards, Award{
			Kind:     kind,
			Rarity:   kind.Rarity(),
			Language: status.Language,
			Level:    string(status.Level),
			Reason:   reason,
		})
	}

	if status.TotalTimeSpent < req.TotalTimeMins {
		add(KindFastLearner, fmt.Sprintf("Graduated %s in %d of %d planned minutes", path, status.TotalTimeSpent, req.TotalTimeMins))
	}
	if status.CurrentConcept == progression.CurrentConceptCompleted {
		add(KindPathfinder, fmt.Sprintf("Completed every concept in %s", path))
	}
	if status.ProjectCompleted {
		add(KindProjectBuilder, fmt.Sprintf("Shipped the %s final project", path))
	}
	if float64(status.ExercisesCompleted) >= PracticeMultiplier*float64(req.ExercisesCompleted) {
		add(KindPractice, fmt.Sprintf("Solved %d exercises in %s (%d required)", status.ExercisesCompleted, path, req.ExercisesCompleted))
	}
	if status.GraduationScore >= 100 {
		add(KindPerfectScore, fmt.Sprintf("Scored 100 in %s", path))
	}

	langs := map[string]bool{status.Language: true}
	for _, l := range priorLanguages {
		langs[curriculum.NormalizeLanguage(l)] = true
	}
	if len(langs) >= PolyglotLanguages {
		add(KindPolyglot, fmt.Sprintf("Graduated in %d languages", len(langs)))
	}

	return awards
}

// Names returns the display names of awards, for certificates.
func Names(awards []Award) []string {
	names := make([]string, len(awards))
	for i, a := range awards {
		names[i] = a.Kind.DisplayName()
	}
	return names
}
