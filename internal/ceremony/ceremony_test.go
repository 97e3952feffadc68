package ceremony

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/devpath/internal/curriculum"
)

func fixedGenerator(at time.Time) *Generator {
	return NewGenerator(
		WithClock(func() time.Time { return at }),
		WithSerialSource(func() string { return "serial-1" }),
	)
}

func TestGenerate_PythonBeginner(t *testing.T) {
	c := Generate("python", curriculum.LevelBeginner, 90, 300, []string{"Fast Learner"})

	assert.Equal(t, 90, c.Certificate.Score)
	assert.Equal(t, 300, c.Certificate.TimeSpent)
	assert.Equal(t, c.Certificate.IssueDate.Add(365*24*time.Hour), c.Certificate.ValidUntil)
	assert.Equal(t, "intermediate", c.NextLevelRecommendation)
	assert.Equal(t, []string{"Fast Learner"}, c.Certificate.Achievements)
	assert.NotEmpty(t, c.Certificate.SerialNumber)
	assert.Equal(t, HonorDistinction, c.Certificate.Honor)
}

func TestGenerator_IDAndTitle(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fixedGenerator(at).GenerateFor("learner-7", "JavaScript", curriculum.LevelIntermediate, 80, 400, nil)

	cert := c.Certificate
	assert.Equal(t, "cert-javascript-intermediate-1772366400000", cert.ID)
	assert.Equal(t, "serial-1", cert.SerialNumber)
	assert.Equal(t, "JavaScript Intermediate Graduate", cert.Title)
	assert.Equal(t, "learner-7", cert.LearnerID)
	assert.Equal(t, "javascript", cert.Language)
	assert.Equal(t, at, cert.IssueDate)
	assert.Equal(t, time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC), cert.ValidUntil)
	assert.NotNil(t, cert.Achievements)
	assert.Equal(t, RecommendContinuePracticing, c.NextLevelRecommendation)
}

func TestGenerator_CopiesAchievements(t *testing.T) {
	achievements := []string{"Pathfinder"}
	c := fixedGenerator(time.Now()).Generate("python", curriculum.LevelBeginner, 90, 100, achievements)
	achievements[0] = "mutated"
	assert.Equal(t, []string{"Pathfinder"}, c.Certificate.Achievements)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		level curriculum.Level
		score int
		want  string
	}{
		{curriculum.LevelBeginner, 85, "intermediate"},
		{curriculum.LevelBeginner, 84, RecommendContinuePracticing},
		{curriculum.LevelIntermediate, 100, "advanced"},
		{curriculum.LevelIntermediate, 50, RecommendContinuePracticing},
		{curriculum.LevelAdvanced, 100, RecommendExpertLevel},
		{curriculum.LevelAdvanced, 60, RecommendExpertLevel},
	}
	for _, tt := range tests {
		got := Recommend(tt.level, tt.score)
		if got != tt.want {
			t.Errorf("Recommend(%q, %d) = %q, want %q", tt.level, tt.score, got, tt.want)
		}
	}
}

func TestHonorForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Honor
	}{
		{0, HonorPass},
		{84, HonorPass},
		{85, HonorMerit},
		{89, HonorMerit},
		{90, HonorDistinction},
		{94, HonorDistinction},
		{95, HonorHighestDistinction},
		{100, HonorHighestDistinction},
	}
	for _, tt := range tests {
		got := HonorForScore(tt.score)
		if got != tt.want {
			t.Errorf("HonorForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCelebration(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g := fixedGenerator(at)

	c := g.Generate("python", curriculum.LevelAdvanced, 96, 500, nil)
	require.Equal(t, RecommendExpertLevel, c.NextLevelRecommendation)
	assert.Contains(t, c.Celebration, "Python Advanced with Highest Distinction")
	assert.Contains(t, c.Celebration, "every level")

	c = g.Generate("javascript", curriculum.LevelBeginner, 88, 300, nil)
	assert.Contains(t, c.Celebration, "with Merit")
	assert.Contains(t, c.Celebration, "ready for Intermediate")

	c = g.Generate("javascript", curriculum.LevelBeginner, 70, 300, nil)
	assert.NotContains(t, c.Celebration, " with ")
	assert.Contains(t, c.Celebration, "Keep practicing")
}
