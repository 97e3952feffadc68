package curriculum

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLearningPath_JavaScriptBeginner(t *testing.T) {
	p, ok := GetLearningPath("javascript", LevelBeginner)
	require.True(t, ok)

	assert.Len(t, p.Concepts, 6)
	assert.Equal(t, 6, p.Requirements.ConceptsCompleted)
	assert.Equal(t, 19, p.Requirements.ExercisesCompleted)
	assert.Equal(t, 285, p.Requirements.TotalTimeMins)
	assert.Equal(t, 80, p.Requirements.MasteryLevel)
	assert.True(t, p.Requirements.ProjectCompleted)
	assert.Equal(t, 285, p.TotalMins())
	assert.Equal(t, 19, p.TotalExercises())
}

func TestGetLearningPath_NormalizesLanguage(t *testing.T) {
	_, ok := GetLearningPath("  JavaScript ", LevelBeginner)
	assert.True(t, ok)
}

func TestGetLearningPath_Unknown(t *testing.T) {
	_, ok := GetLearningPath("cobol", LevelBeginner)
	assert.False(t, ok)

	_, ok = GetLearningPath("python", Level("expert"))
	assert.False(t, ok)
}

func TestGetLearningPath_ReturnsCopy(t *testing.T) {
	p, _ := GetLearningPath("python", LevelBeginner)
	p.Concepts[0].ID = "mutated"
	p.Concepts[1].Prerequisites[0] = "mutated"

	again, _ := GetLearningPath("python", LevelBeginner)
	assert.Equal(t, "py-variables", again.Concepts[0].ID)
	assert.Equal(t, "py-variables", again.Concepts[1].Prerequisites[0])
}

func TestPaths_Ordering(t *testing.T) {
	paths := Paths()
	require.Len(t, paths, 6)

	var keys []string
	for _, p := range paths {
		keys = append(keys, p.Key().String())
	}
	assert.Equal(t, []string{
		"javascript/beginner", "javascript/intermediate", "javascript/advanced",
		"python/beginner", "python/intermediate", "python/advanced",
	}, keys)
}

func TestLanguagesAndLevels(t *testing.T) {
	assert.Equal(t, []string{"javascript", "python"}, Languages())
	assert.Equal(t, AllLevels(), Default().Levels("python"))
	assert.Empty(t, Default().Levels("rust"))
}

func TestConceptPrerequisites(t *testing.T) {
	prereqs := ConceptPrerequisites("javascript", LevelBeginner, "js-arrays-objects")
	require.Len(t, prereqs, 2)
	assert.Equal(t, "js-loops", prereqs[0].ID)
	assert.Equal(t, "js-functions", prereqs[1].ID)

	assert.Empty(t, ConceptPrerequisites("javascript", LevelBeginner, "js-variables"))
	assert.Nil(t, ConceptPrerequisites("javascript", LevelBeginner, "nope"))
	assert.Nil(t, ConceptPrerequisites("cobol", LevelBeginner, "js-variables"))
}

func TestDependents(t *testing.T) {
	deps := Default().Dependents("javascript", LevelBeginner, "js-conditionals")
	var ids []string
	for _, d := range deps {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"js-loops", "js-functions"}, ids)
}

func TestCanAccessConcept(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		completed map[string]bool
		want      bool
	}{
		{"root always open", "js-variables", nil, true},
		{"locked without prereq", "js-operators", nil, false},
		{"unlocked with prereq", "js-operators", map[string]bool{"js-variables": true}, true},
		{"partial prereqs", "js-arrays-objects", map[string]bool{"js-loops": true}, false},
		{"all prereqs", "js-arrays-objects", map[string]bool{"js-loops": true, "js-functions": true}, true},
		{"unknown concept", "js-nope", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccessConcept("javascript", LevelBeginner, tt.id, tt.completed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextAvailableConcept(t *testing.T) {
	next, ok := NextAvailableConcept("javascript", LevelBeginner, nil)
	require.True(t, ok)
	assert.Equal(t, "js-variables", next.ID)

	// Out of order: js-functions done before js-loops.
	completed := map[string]bool{
		"js-variables":    true,
		"js-operators":    true,
		"js-conditionals": true,
		"js-functions":    true,
	}
	next, ok = NextAvailableConcept("javascript", LevelBeginner, completed)
	require.True(t, ok)
	assert.Equal(t, "js-loops", next.ID)

	all := map[string]bool{}
	p, _ := GetLearningPath("javascript", LevelBeginner)
	for _, id := range p.ConceptIDs() {
		all[id] = true
	}
	_, ok = NextAvailableConcept("javascript", LevelBeginner, all)
	assert.False(t, ok)

	_, ok = NextAvailableConcept("cobol", LevelBeginner, nil)
	assert.False(t, ok)
}

func TestNextAvailableConcept_SkipsLockedConcept(t *testing.T) {
	// py-modules has no prerequisites, py-file-io needs it.
	completed := map[string]bool{"py-comprehensions": true}
	next, ok := NextAvailableConcept("python", LevelIntermediate, completed)
	require.True(t, ok)
	assert.Equal(t, "py-modules", next.ID)
}

func TestAvailableConcepts(t *testing.T) {
	avail := Default().AvailableConcepts("python", LevelIntermediate, nil)
	var ids []string
	for _, a := range avail {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"py-comprehensions", "py-modules", "py-classes"}, ids)
}

func TestAverageConceptMins(t *testing.T) {
	// 285 / 6 = 47.5, rounds to 48
	assert.Equal(t, 48, Default().AverageConceptMins("javascript", LevelBeginner))
	assert.Equal(t, 0, Default().AverageConceptMins("cobol", LevelBeginner))
}

func TestConcept_Lookup(t *testing.T) {
	concept, err := Default().Concept("python", LevelAdvanced, "py-typing")
	require.NoError(t, err)
	assert.Equal(t, "Type Hints", concept.Title)

	_, err = Default().Concept("python", LevelAdvanced, "py-nope")
	assert.ErrorContains(t, err, "concept not found")

	_, err = Default().Concept("cobol", LevelAdvanced, "py-typing")
	assert.ErrorContains(t, err, "learning path not found")
}

func TestLevel(t *testing.T) {
	next, ok := LevelBeginner.Next()
	assert.True(t, ok)
	assert.Equal(t, LevelIntermediate, next)

	_, ok = LevelAdvanced.Next()
	assert.False(t, ok)

	lvl, err := ParseLevel(" Advanced ")
	require.NoError(t, err)
	assert.Equal(t, LevelAdvanced, lvl)

	_, err = ParseLevel("expert")
	assert.Error(t, err)
}

func TestLanguageDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"javascript", "JavaScript"},
		{"PYTHON", "Python"},
		{"rust", "Rust"},
		{"", ""},
		{"élixir", "Élixir"},
		{"ögo", "Ögo"},
		{"日本", "日本"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := LanguageDisplayName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
