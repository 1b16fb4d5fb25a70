package repository

import (
	"context"
	"testing"

	"github.com/kmazur/tweetvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(id string) *models.Profile {
	return &models.Profile{
		ID:             id,
		InternalID:     id,
		DisplayName:    "Donald",
		Handle:         "donald_" + id,
		Bio:            "former PM",
		Location:       "Warsaw",
		FollowersCount: 1500,
		FollowingCount: 42,
		PostsCount:     900,
		RawPayload:     models.Payload{"id": id, "name": "Donald"},
	}
}

func TestProfileCreateAndGet(t *testing.T) {
	r := NewProfileRepository(testDB)
	ctx := context.Background()

	profile := testProfile("p-create-1")
	require.NoError(t, r.Create(ctx, profile))

	got, err := r.GetByID(ctx, "p-create-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.Handle, got.Handle)
	assert.Equal(t, profile.FollowersCount, got.FollowersCount)
	assert.Equal(t, "Donald", got.RawPayload["name"], "raw payload must round-trip through JSONB")
}

func TestProfileGetMissing(t *testing.T) {
	r := NewProfileRepository(testDB)

	got, err := r.GetByID(context.Background(), "p-does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileDuplicateInsert(t *testing.T) {
	r := NewProfileRepository(testDB)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testProfile("p-dup-1")))

	err := r.Create(ctx, testProfile("p-dup-1"))
	assert.ErrorIs(t, err, ErrDuplicate)
}
