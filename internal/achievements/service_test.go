package achievements

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/devpath/internal/store"
)

func TestService_AwardPersists(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	svc := NewService(s.EventRepo(), nil)
	ctx := context.Background()

	awards := svc.Award(ctx, "ada", "cert-1", jsStatus(t, 19, 150, true), nil)
	require.Len(t, awards, 3)
	for _, a := range awards {
		assert.Equal(t, "ada", a.LearnerID)
		assert.False(t, a.AwardedAt.IsZero())
	}

	stored, err := svc.List(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, stored, 3)
	// Newest first.
	assert.Equal(t, KindProjectBuilder, stored[0].Kind)
	assert.Equal(t, RarityCommon, stored[0].Rarity)

	events, err := s.EventRepo().QueryAchievementEvents(ctx, "ada", store.QueryOpts{})
	require.NoError(t, err)
	assert.Equal(t, "cert-1", events[0].CertificateID)
}

func TestService_NilRepo(t *testing.T) {
	svc := NewService(nil, nil)
	awards := svc.Award(context.Background(), "ada", "cert-1", jsStatus(t, 19, 150, true), nil)
	assert.Len(t, awards, 3)

	stored, err := svc.List(context.Background(), "ada")
	assert.NoError(t, err)
	assert.Empty(t, stored)
}
