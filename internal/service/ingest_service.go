package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	config "github.com/kmazur/tweetvault/configs"
	"github.com/kmazur/tweetvault/internal/models"
	"github.com/kmazur/tweetvault/internal/repository"
	"github.com/kmazur/tweetvault/internal/transfer"
	"github.com/kmazur/tweetvault/pkg/timeutil"
)

// Scraper is the external collaborator producing raw record batches. Its
// contract guarantees that every record embeds the author's profile document
// under "user"; the first element is read as authoritative for the batch.
type Scraper interface {
	ScrapeProfilePosts(ctx context.Context, profileURL string, limit int) ([]models.RawRecord, error)
}

type IngestService interface {
	Ingest(ctx context.Context, records []models.RawRecord) (*transfer.IngestionReport, error)
	IngestProfile(ctx context.Context, profileURL string, limit int) (*transfer.IngestionReport, error)
}

type ingestService struct {
	pr      repository.ProfileRepository
	po      repository.PostRepository
	scraper Scraper
	cfg     config.Config
}

func NewIngestService(
	pr repository.ProfileRepository,
	po repository.PostRepository,
	scraper Scraper,
	cfg config.Config) IngestService {
	return &ingestService{
		pr:      pr,
		po:      po,
		scraper: scraper,
		cfg:     cfg,
	}
}

// IngestProfile fetches one batch from the scraper and ingests it.
func (s *ingestService) IngestProfile(ctx context.Context, profileURL string, limit int) (*transfer.IngestionReport, error) {
	records, err := s.scraper.ScrapeProfilePosts(ctx, profileURL, limit)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("scrape %s: %w", profileURL, err)
	}
	return s.Ingest(ctx, records)
}

// Ingest maps the raw batch into one Profile and its Posts and writes them in
// two transactions: the profile first, then all posts together. A duplicate
// at either commit point rolls that transaction back and is recorded in the
// report instead of failing the run. Any malformed record aborts the whole
// run before the post transaction starts.
func (s *ingestService) Ingest(ctx context.Context, records []models.RawRecord) (*transfer.IngestionReport, error) {
	if len(records) == 0 {
		slog.Info(ErrEmptyBatch.Error())
		return nil, ErrEmptyBatch
	}

	runID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	profileDoc, ok := records[0].Child("user")
	if !ok {
		return nil, &MissingFieldError{Field: "user"}
	}

	profile, err := buildProfile(profileDoc)
	if err != nil {
		return nil, err
	}

	report := &transfer.IngestionReport{
		RunID:          runID,
		ProfileID:      profile.ID,
		RecordCount:    len(records),
		ProfileOutcome: transfer.OutcomeCreated,
		PostOutcome:    transfer.OutcomeCreated,
	}

	if err := s.pr.Create(ctx, profile); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("persist profile: %w", err)
		}
		// The profile row is already there from an earlier run. The post
		// batch still runs, so a run that died between the two commit points
		// gets completed by the re-run.
		report.ProfileOutcome = transfer.OutcomeAlreadyExists
	}

	posts := make([]*models.Post, 0, len(records))
	for _, rec := range records {
		post, err := s.buildPost(rec, profile.ID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := s.po.CreateBatch(ctx, posts); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("persist posts: %w", err)
		}
		report.PostOutcome = transfer.OutcomeAlreadyExists
		return report, nil
	}
	report.PostsPersisted = len(posts)

	return report, nil
}

func buildProfile(doc models.RawRecord) (*models.Profile, error) {
	profile := &models.Profile{RawPayload: doc.Payload()}

	var ok bool
	if profile.ID, ok = doc.StringField("id"); !ok {
		return nil, &MissingFieldError{Field: "id"}
	}
	if profile.InternalID, ok = doc.StringField("rest_id"); !ok {
		return nil, &MissingFieldError{Field: "rest_id"}
	}
	if profile.DisplayName, ok = doc.StringField("name"); !ok {
		return nil, &MissingFieldError{Field: "name"}
	}
	if profile.Handle, ok = doc.StringField("screen_name"); !ok {
		return nil, &MissingFieldError{Field: "screen_name"}
	}

	profile.Bio = doc.StringOr("description", "")
	profile.Location = doc.StringOr("location", "")
	profile.FollowersCount = doc.IntOr("followers_count", 0)
	profile.FollowingCount = doc.IntOr("friends_count", 0)
	profile.PostsCount = doc.IntOr("statuses_count", 0)

	return profile, nil
}

func (s *ingestService) buildPost(rec models.RawRecord, ownerID string) (*models.Post, error) {
	post := &models.Post{OwnerID: ownerID, RawPayload: rec.Payload()}

	var ok bool
	if post.ID, ok = rec.StringField("id"); !ok {
		return nil, &MissingFieldError{Field: "id"}
	}
	raw, ok := rec.StringField("created_at")
	if !ok {
		return nil, &MissingFieldError{Field: "created_at"}
	}

	createdAt, err := timeutil.Normalize(raw, s.cfg.TargetTimezone)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	post.CreatedAt = createdAt

	post.Text = rec.StringOr("text", "")
	post.LikeCount = rec.IntOr("favorite_count", 0)
	post.RepostCount = rec.IntOr("retweet_count", 0)
	post.ReplyCount = rec.IntOr("reply_count", 0)
	post.QuoteCount = rec.IntOr("quote_count", 0)

	return post, nil
}
