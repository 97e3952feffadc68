package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/devpath/internal/achievements"
	"github.com/abhisek/devpath/internal/ceremony"
	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/progression"
	"github.com/abhisek/devpath/internal/ui/theme"
)

// DefaultWidth is the render width used by the CLI.
const DefaultWidth = 64

func pathHeading(language string, level curriculum.Level) string {
	return curriculum.LanguageDisplayName(language) + " " + level.DisplayName()
}

func row(label, value string) string {
	return theme.Label.Render(label) + theme.Body.Render(value)
}

// StatusView renders a learner's progression status on a path.
func StatusView(st progression.Status, path curriculum.LearningPath, width int) string {
	if !st.PathFound() {
		return theme.Bad.Render(progression.MsgPathNotFound) +
			theme.Hint.Render(fmt.Sprintf(" (%s/%s)", st.Language, st.Level))
	}
	req := st.Requirements

	lines := []string{
		theme.Title.Render(pathHeading(st.Language, st.Level)) +
			theme.Hint.Render(fmt.Sprintf("  %s, %s", path.EstimatedDuration, path.Difficulty)),
		"",
		NewProgressBar("Concepts", st.ConceptProgress, true, width).View() +
			theme.Hint.Render(fmt.Sprintf("  %d/%d", len(st.CompletedConcepts), req.ConceptsCompleted)),
		NewProgressBar("Exercises", st.ExerciseProgress, true, width).View() +
			theme.Hint.Render(fmt.Sprintf("  %d/%d", st.ExercisesCompleted, req.ExercisesCompleted)),
		NewProgressBar("Time", st.TimeProgress, true, width).View() +
			theme.Hint.Render(fmt.Sprintf("  %d/%d min", st.TotalTimeSpent, req.TotalTimeMins)),
		"",
		row("Mastery", fmt.Sprintf("%d%% (target %d%%)", st.MasteryLevel, req.MasteryLevel)),
		row("Score", fmt.Sprintf("%d (minimum %d)", st.GraduationScore, req.MinimumScore)),
		row("Project", projectText(st.ProjectCompleted)),
	}

	if st.IsReadyForGraduation {
		lines = append(lines, row("Ready", theme.Done.Render("yes")))
	} else {
		lines = append(lines, row("Ready", fmt.Sprintf("no, about %d min to go", st.EstimatedTimeToGraduation)))
	}

	lines = append(lines, "", theme.Title.Render("Concepts"))
	lines = append(lines, conceptLines(path, st)...)

	if len(st.NextSteps) > 0 {
		lines = append(lines, "", theme.Title.Render("Next steps"))
		for _, step := range st.NextSteps {
			lines = append(lines, "  • "+theme.Body.Render(step))
		}
	}

	if len(st.IgnoredConcepts) > 0 {
		lines = append(lines, "", theme.Hint.Render("Ignored: "+strings.Join(st.IgnoredConcepts, ", ")))
	}

	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func projectText(done bool) string {
	if done {
		return theme.Done.Render("submitted")
	}
	return "not submitted"
}

func conceptLines(path curriculum.LearningPath, st progression.Status) []string {
	completed := make(map[string]bool, len(st.CompletedConcepts))
	for _, id := range st.CompletedConcepts {
		completed[id] = true
	}

	lines := make([]string, 0, len(path.Concepts))
	for _, c := range path.Concepts {
		var line string
		switch {
		case completed[c.ID]:
			line = theme.Done.Render("  ✓ ") + theme.Body.Render(c.Title)
		case c.ID == st.CurrentConcept:
			line = theme.Current.Render("  ▶ "+c.Title) + theme.Hint.Render(fmt.Sprintf("  ~%d min", c.EstimatedMins))
		default:
			line = theme.Locked.Render("  · " + c.Title)
		}
		lines = append(lines, line)
	}
	return lines
}

// PathView renders a learning path with its concepts and requirements.
func PathView(path curriculum.LearningPath) string {
	req := path.Requirements
	lines := []string{
		theme.Title.Render(pathHeading(path.Language, path.Level)) +
			theme.Hint.Render(fmt.Sprintf("  %s, %s", path.EstimatedDuration, path.Difficulty)),
		"",
	}
	for i, c := range path.Concepts {
		line := fmt.Sprintf("%2d. %-28s %3d min  %2d exercises", i+1, c.Title, c.EstimatedMins, c.ExercisesRequired)
		if len(c.Prerequisites) > 0 {
			line += theme.Hint.Render("  after " + strings.Join(c.Prerequisites, ", "))
		}
		lines = append(lines, theme.Body.Render(line))
	}
	lines = append(lines, "",
		theme.Title.Render("To graduate"),
		row("Concepts", fmt.Sprint(req.ConceptsCompleted)),
		row("Exercises", fmt.Sprint(req.ExercisesCompleted)),
		row("Project", map[bool]string{true: "required", false: "optional"}[req.ProjectCompleted]),
		row("Time", fmt.Sprintf("%d min", req.TotalTimeMins)),
		row("Mastery", fmt.Sprintf("%d%%", req.MasteryLevel)),
		row("Score", fmt.Sprintf("%d", req.MinimumScore)),
	)
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// CertificateView renders a graduation ceremony.
func CertificateView(c ceremony.Ceremony) string {
	cert := c.Certificate
	lines := []string{
		theme.Title.Render(cert.Title),
		theme.HonorStyle(cert.Honor).Render(cert.Honor.DisplayName()),
		"",
		row("Learner", cert.LearnerID),
		row("Score", fmt.Sprint(cert.Score)),
		row("Time", fmt.Sprintf("%d min", cert.TimeSpent)),
		row("Issued", cert.IssueDate.Format("2006-01-02")),
		row("Valid until", cert.ValidUntil.Format("2006-01-02")),
		row("Serial", cert.SerialNumber),
		row("ID", cert.ID),
	}
	if len(cert.Achievements) > 0 {
		lines = append(lines, row("Achievements", strings.Join(cert.Achievements, ", ")))
	}
	lines = append(lines, "", theme.Body.Render(c.Celebration))
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// AchievementList renders awards one per line, newest first as given.
func AchievementList(awards []achievements.Award) string {
	if len(awards) == 0 {
		return theme.Hint.Render("No achievements yet.")
	}
	lines := make([]string, 0, len(awards))
	for _, a := range awards {
		name := theme.RarityStyle(a.Rarity).Render(a.Kind.Icon() + " " + a.Kind.DisplayName())
		lines = append(lines, name+theme.Hint.Render(fmt.Sprintf("  %s %s  %s",
			curriculum.LanguageDisplayName(a.Language), curriculum.Level(a.Level).DisplayName(), a.Reason)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
