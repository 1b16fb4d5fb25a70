package service

import (
	"context"
	"testing"

	config "github.com/kmazur/tweetvault/configs"
	"github.com/kmazur/tweetvault/internal/models"
	"github.com/kmazur/tweetvault/internal/repository"
	"github.com/kmazur/tweetvault/internal/transfer"
	"github.com/kmazur/tweetvault/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	if _, ok := r.profiles[profile.ID]; ok {
		return repository.ErrDuplicate
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return r.profiles[id], nil
}

type fakePostRepo struct {
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

// CreateBatch mirrors the all-or-nothing transaction of the real repository:
// a duplicate anywhere in the batch leaves the store unchanged.
func (r *fakePostRepo) CreateBatch(ctx context.Context, posts []*models.Post) error {
	for _, post := range posts {
		if _, ok := r.posts[post.ID]; ok {
			return repository.ErrDuplicate
		}
	}
	for _, post := range posts {
		r.posts[post.ID] = post
	}
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return r.posts[id], nil
}

func (r *fakePostRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Post, error) {
	var out []*models.Post
	for _, post := range r.posts {
		if post.OwnerID == ownerID {
			out = append(out, post)
		}
	}
	return out, nil
}

func (r *fakePostRepo) CountByOwnerID(ctx context.Context, ownerID string) (int, error) {
	posts, _ := r.GetByOwnerID(ctx, ownerID)
	return len(posts), nil
}

func newTestService(pr repository.ProfileRepository, po repository.PostRepository) IngestService {
	cfg := config.Config{TargetTimezone: "Europe/Warsaw"}
	return NewIngestService(pr, po, nil, cfg)
}

func userDoc() map[string]interface{} {
	return map[string]interface{}{
		"id":              "100",
		"rest_id":         "100",
		"name":            "Donald",
		"screen_name":     "donald",
		"description":     "former PM",
		"location":        "Warsaw",
		"followers_count": float64(1500),
		"friends_count":   float64(42),
		"statuses_count":  float64(900),
	}
}

func postRecord(id string) models.RawRecord {
	return models.RawRecord{
		"id":             id,
		"created_at":     "Wed Oct 11 12:00:00 +0000 2023",
		"text":           "hello from " + id,
		"favorite_count": float64(3),
		"retweet_count":  float64(2),
		"reply_count":    float64(1),
		"quote_count":    float64(0),
		"user":           userDoc(),
	}
}

func TestIngestEmptyBatch(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	_, err := s.Ingest(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.Empty(t, pr.profiles, "nothing may be written for an empty batch")
	assert.Empty(t, po.posts)
}

func TestIngestSuccess(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	report, err := s.Ingest(context.Background(), []models.RawRecord{postRecord("1"), postRecord("2")})
	require.NoError(t, err)

	assert.Equal(t, 2, report.RecordCount)
	assert.Equal(t, transfer.OutcomeCreated, report.ProfileOutcome)
	assert.Equal(t, transfer.OutcomeCreated, report.PostOutcome)
	assert.Equal(t, 2, report.PostsPersisted)
	assert.Equal(t, transfer.StatusCreated, report.Status())
	assert.NotEmpty(t, report.RunID)

	profile := pr.profiles["100"]
	require.NotNil(t, profile)
	assert.Equal(t, "Donald", profile.DisplayName)
	assert.Equal(t, "donald", profile.Handle)
	assert.Equal(t, 1500, profile.FollowersCount)
	assert.Equal(t, 42, profile.FollowingCount)
	assert.Equal(t, 900, profile.PostsCount)
	assert.NotNil(t, profile.RawPayload)

	post := po.posts["1"]
	require.NotNil(t, post)
	assert.Equal(t, "100", post.OwnerID)
	assert.Equal(t, "2023-10-11 14:00", post.CreatedAt)
	assert.Equal(t, 3, post.LikeCount)
}

func TestIngestDefaultsMissingOptionalFields(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	rec := models.RawRecord{
		"id":         "7",
		"created_at": "Wed Oct 11 12:00:00 +0000 2023",
		"user": map[string]interface{}{
			"id":          "100",
			"rest_id":     "100",
			"name":        "Donald",
			"screen_name": "donald",
		},
	}

	_, err := s.Ingest(context.Background(), []models.RawRecord{rec})
	require.NoError(t, err)

	profile := pr.profiles["100"]
	require.NotNil(t, profile)
	assert.Empty(t, profile.Bio)
	assert.Empty(t, profile.Location)
	assert.Zero(t, profile.FollowersCount)

	post := po.posts["7"]
	require.NotNil(t, post)
	assert.Empty(t, post.Text)
	assert.Zero(t, post.LikeCount)
	assert.Zero(t, post.RepostCount)
	assert.Zero(t, post.ReplyCount)
	assert.Zero(t, post.QuoteCount)
}

func TestIngestMissingRequiredFields(t *testing.T) {
	t.Run("Profile document absent", func(t *testing.T) {
		s := newTestService(newFakeProfileRepo(), newFakePostRepo())

		rec := postRecord("1")
		delete(rec, "user")

		_, err := s.Ingest(context.Background(), []models.RawRecord{rec})
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "user", missing.Field)
	})

	t.Run("Profile missing handle", func(t *testing.T) {
		pr := newFakeProfileRepo()
		s := newTestService(pr, newFakePostRepo())

		rec := postRecord("1")
		user := userDoc()
		delete(user, "screen_name")
		rec["user"] = user

		_, err := s.Ingest(context.Background(), []models.RawRecord{rec})
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "screen_name", missing.Field)
		assert.Empty(t, pr.profiles, "profile with missing fields must not be written")
	})

	t.Run("Post missing id aborts the run", func(t *testing.T) {
		pr := newFakeProfileRepo()
		po := newFakePostRepo()
		s := newTestService(pr, po)

		bad := postRecord("1")
		delete(bad, "id")

		_, err := s.Ingest(context.Background(), []models.RawRecord{postRecord("1"), bad})
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "id", missing.Field)
		assert.Empty(t, po.posts, "no post may be written when one record is invalid")
	})
}

func TestIngestMalformedTimestampAbortsRun(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	bad := postRecord("2")
	bad["created_at"] = "2023-10-11T12:00:00Z"

	_, err := s.Ingest(context.Background(), []models.RawRecord{postRecord("1"), bad})
	assert.ErrorIs(t, err, timeutil.ErrMalformedTimestamp)
	assert.Empty(t, po.posts)
}

func TestIngestIsIdempotent(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	batch := []models.RawRecord{postRecord("1"), postRecord("2")}

	first, err := s.Ingest(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, transfer.StatusCreated, first.Status())

	second, err := s.Ingest(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusAlreadyExists, second.Status())
	assert.Equal(t, transfer.OutcomeAlreadyExists, second.ProfileOutcome)
	assert.Equal(t, transfer.OutcomeAlreadyExists, second.PostOutcome)
	assert.Zero(t, second.PostsPersisted)

	assert.Len(t, pr.profiles, 1, "row count must not change on the second run")
	assert.Len(t, po.posts, 2)
}

// A run that crashed after the profile commit but before the post commit
// leaves the profile behind. The re-run reports the profile conflict and
// still writes the posts.
func TestIngestCompletesAfterPartialRun(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	pr.profiles["100"] = &models.Profile{ID: "100", Handle: "donald"}

	report, err := s.Ingest(context.Background(), []models.RawRecord{postRecord("1"), postRecord("2")})
	require.NoError(t, err)

	assert.Equal(t, transfer.OutcomeAlreadyExists, report.ProfileOutcome)
	assert.Equal(t, transfer.OutcomeCreated, report.PostOutcome)
	assert.Equal(t, 2, report.PostsPersisted)
	assert.Equal(t, transfer.StatusPartialAlreadyExists, report.Status())
	assert.Len(t, po.posts, 2)
}

func TestIngestReferentialIntegrity(t *testing.T) {
	pr := newFakeProfileRepo()
	po := newFakePostRepo()
	s := newTestService(pr, po)

	_, err := s.Ingest(context.Background(), []models.RawRecord{postRecord("1"), postRecord("2"), postRecord("3")})
	require.NoError(t, err)

	for id, post := range po.posts {
		owner, err := pr.GetByID(context.Background(), post.OwnerID)
		require.NoError(t, err)
		assert.NotNil(t, owner, "post %s references missing profile %s", id, post.OwnerID)
	}
}
