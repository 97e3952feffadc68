package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var n int
	require.NoError(t, s2.DB().QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n))
	assert.Equal(t, 2, n)
}

func TestExtractUp(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (id INTEGER);\n", extractUp(content))
	assert.Equal(t, "SELECT 1;", extractUp("SELECT 1;"))
}

func TestProgressSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "ada", "javascript", "beginner")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, repo.Save(ctx, &ProgressRecord{
		LearnerID:          "ada",
		Language:           "javascript",
		Level:              "beginner",
		CompletedConcepts:  []string{"js-variables", "js-operators"},
		ExercisesCompleted: 5,
		TotalTimeSpent:     80,
	}))

	rec, err = repo.Get(ctx, "ada", "javascript", "beginner")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, []string{"js-variables", "js-operators"}, rec.CompletedConcepts)
	assert.Equal(t, 5, rec.ExercisesCompleted)
	assert.False(t, rec.ProjectCompleted)
	assert.Equal(t, 80, rec.TotalTimeSpent)
	assert.False(t, rec.CreatedAt.IsZero())

	created := rec.CreatedAt
	rec.ProjectCompleted = true
	rec.ExercisesCompleted = 9
	require.NoError(t, repo.Save(ctx, rec))

	rec, err = repo.Get(ctx, "ada", "javascript", "beginner")
	require.NoError(t, err)
	assert.True(t, rec.ProjectCompleted)
	assert.Equal(t, 9, rec.ExercisesCompleted)
	assert.Equal(t, created, rec.CreatedAt)
}

func TestProgressList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for _, r := range []ProgressRecord{
		{LearnerID: "bob", Language: "python", Level: "beginner"},
		{LearnerID: "ada", Language: "python", Level: "beginner"},
		{LearnerID: "ada", Language: "javascript", Level: "beginner"},
	} {
		r := r
		require.NoError(t, repo.Save(ctx, &r))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ada", all[0].LearnerID)
	assert.Equal(t, "javascript", all[0].Language)
	assert.Equal(t, "bob", all[2].LearnerID)
	assert.Equal(t, []string{}, all[2].CompletedConcepts)

	mine, err := repo.ListByLearner(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestCertificateSaveGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.CertificateRepo()
	ctx := context.Background()

	issued := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	cert := &CertificateRecord{
		ID:                      "cert-python-beginner-1",
		SerialNumber:            "serial-1",
		Title:                   "Python Beginner Graduate",
		LearnerID:               "ada",
		Language:                "python",
		Level:                   "beginner",
		IssueDate:               issued,
		ValidUntil:              issued.Add(365 * 24 * time.Hour),
		Score:                   92,
		TimeSpent:               300,
		Honor:                   "distinction",
		Achievements:            []string{"Fast Learner"},
		NextLevelRecommendation: "intermediate",
	}
	require.NoError(t, repo.Save(ctx, cert))

	// Certificates are immutable.
	assert.Error(t, repo.Save(ctx, cert))

	// Another learner may share the display ID.
	bob := *cert
	bob.SerialNumber = "serial-2"
	bob.LearnerID = "bob"
	require.NoError(t, repo.Save(ctx, &bob))

	got, err := repo.Get(ctx, cert.SerialNumber)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *cert, *got)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.ListByLearner(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = repo.ListByLearner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cert.ID, list[0].ID)

	list, err = repo.ListByLearner(ctx, "cy")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLessonPutGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &LessonRecord{
		Language: "python", Level: "beginner", ConceptID: "py-loops",
		Title: "Loops", Body: "for x in range(3): ...", Source: "manual",
	}))
	require.NoError(t, repo.Put(ctx, &LessonRecord{
		Language: "javascript", Level: "beginner", ConceptID: "js-loops",
		Title: "Loops", Body: "for (let i = 0; ...)", Source: "manual",
	}))
	require.NoError(t, repo.Put(ctx, &LessonRecord{
		Language: "python", Level: "beginner", ConceptID: "py-loops",
		Title: "Loops", Body: "updated", Source: "mock-model",
	}))

	got, err := repo.Get(ctx, "python", "beginner", "py-loops")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "updated", got.Body)
	assert.Equal(t, "mock-model", got.Source)

	missing, err := repo.Get(ctx, "python", "beginner", "py-nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	py, err := repo.List(ctx, "python")
	require.NoError(t, err)
	assert.Len(t, py, 1)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "tutor", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "tutor", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "lesson", InputTokens: 5, OutputTokens: 5, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "lesson", got[0].Purpose, "newest first")
	assert.Greater(t, got[0].Sequence, got[1].Sequence)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: got[1].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 1)

	one, err := repo.GetLLMEvent(ctx, got[2].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, 10, one.InputTokens)
	assert.True(t, one.Success)

	none, err := repo.GetLLMEvent(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, none)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "tutor", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 40, byPurpose[0].InputTokens)
	assert.Equal(t, 60, byPurpose[0].OutputTokens)
	assert.Equal(t, int64(200), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "m1", byModel[0].Model)
}

func TestAchievementEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, kind := range []string{"pathfinder", "project-builder", "pathfinder"} {
		require.NoError(t, repo.AppendAchievementEvent(ctx, AchievementEventData{
			LearnerID: "ada", Kind: kind, Rarity: "rare", Language: "python", Level: "beginner",
		}))
	}
	require.NoError(t, repo.AppendAchievementEvent(ctx, AchievementEventData{LearnerID: "bob", Kind: "polyglot", Rarity: "legendary"}))

	got, err := repo.QueryAchievementEvents(ctx, "ada", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "pathfinder", got[0].Kind)
	assert.Equal(t, "python", got[0].Language)

	counts, total, err := repo.AchievementCounts(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, counts["pathfinder"])
	assert.Equal(t, 1, counts["project-builder"])
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m"}))
	require.NoError(t, repo.AppendAchievementEvent(ctx, AchievementEventData{LearnerID: "ada", Kind: "pathfinder", Rarity: "rare"}))

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	awards, err := repo.QueryAchievementEvents(ctx, "ada", QueryOpts{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), llmEvents[0].Sequence)
	assert.Equal(t, int64(2), awards[0].Sequence)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("DEVPATH_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("DEVPATH_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "devpath", "devpath.db"), p)
}
