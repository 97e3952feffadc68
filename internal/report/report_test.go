package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/progression"
	"github.com/abhisek/devpath/internal/tracker"
)

func TestWriteXLSX(t *testing.T) {
	py, ok := curriculum.GetLearningPath("python", curriculum.LevelBeginner)
	require.True(t, ok)

	ready := progression.Calculate(progression.Input{
		Language:           "python",
		Level:              curriculum.LevelBeginner,
		CompletedConcepts:  py.ConceptIDs(),
		ExercisesCompleted: 20,
		ProjectCompleted:   true,
		TotalTimeSpent:     300,
	})
	started := progression.Calculate(progression.Input{
		Language:          "javascript",
		Level:             curriculum.LevelBeginner,
		CompletedConcepts: []string{"js-variables"},
	})

	var buf bytes.Buffer
	err := WriteXLSX(&buf, []tracker.LearnerStatus{
		{LearnerID: "ada", Status: ready},
		{LearnerID: "bob", Status: started},
	})
	require.NoError(t, err)

	rows, err := ReadRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"ada", "Python", "Beginner", "completed", "6/6", "20/20", "yes", "300", "100", "100", "yes", "0",
	}, rows[0][:12])

	assert.Equal(t, "bob", rows[1][0])
	assert.Equal(t, "js-operators", rows[1][3])
	assert.Equal(t, "1/6", rows[1][4])
	assert.Equal(t, "no", rows[1][10])
	assert.Equal(t, "Complete 5 more concepts (next up: Operators and Expressions)", rows[1][12])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	rows, err := ReadRows(&buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_RejectsGarbage(t *testing.T) {
	_, err := ReadRows(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}
