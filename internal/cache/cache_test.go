package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/progression"
)

func sampleStatus() progression.Status {
	return progression.Calculate(progression.Input{
		Language:           "python",
		Level:              curriculum.LevelBeginner,
		CompletedConcepts:  []string{"py-variables"},
		ExercisesCompleted: 3,
		TotalTimeSpent:     40,
	})
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"plain", Key{LearnerID: "ada", Language: "python", Level: "beginner"}, "devpath:status:ada:python:beginner"},
		{"colon in learner", Key{LearnerID: "ada:python", Language: "go", Level: "beginner"}, "devpath:status:ada%3Apython:go:beginner"},
		{"slash in learner", Key{LearnerID: "ada/x", Language: "go", Level: "beginner"}, "devpath:status:ada%2Fx:go:beginner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestKeyString_Distinct(t *testing.T) {
	a := Key{LearnerID: "ada:go", Language: "python", Level: "beginner"}
	b := Key{LearnerID: "ada", Language: "go:python", Level: "beginner"}
	assert.NotEqual(t, a.String(), b.String())
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c StatusCache = Noop{}
	k := Key{LearnerID: "ada"}

	require.NoError(t, c.Set(ctx, k, sampleStatus()))
	_, err := c.Get(ctx, k)
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Invalidate(ctx, k))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	k := Key{LearnerID: "ada", Language: "python", Level: "beginner"}

	_, err := c.Get(ctx, k)
	assert.ErrorIs(t, err, ErrMiss)

	want := sampleStatus()
	require.NoError(t, c.Set(ctx, k, want))
	got, err := c.Get(ctx, k)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Invalidate(ctx, k))
	_, err = c.Get(ctx, k)
	assert.ErrorIs(t, err, ErrMiss)
}

// TestRedis needs a reachable server; set REDIS_ADDR to run it.
func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	c, err := NewRedis(ctx, RedisConfig{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	k := Key{LearnerID: "test-" + time.Now().Format("150405.000"), Language: "python", Level: "beginner"}
	t.Cleanup(func() { _ = c.Invalidate(context.Background(), k) })

	_, err = c.Get(ctx, k)
	assert.ErrorIs(t, err, ErrMiss)

	want := sampleStatus()
	require.NoError(t, c.Set(ctx, k, want))
	got, err := c.Get(ctx, k)
	require.NoError(t, err)
	assert.Equal(t, want.MasteryLevel, got.MasteryLevel)
	assert.Equal(t, want.CompletedConcepts, got.CompletedConcepts)
	assert.Equal(t, want.NextSteps, got.NextSteps)

	require.NoError(t, c.Invalidate(ctx, k))
	_, err = c.Get(ctx, k)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
