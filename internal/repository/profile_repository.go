package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/kmazur/tweetvault/internal/models"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profile (id, internal_id, display_name, handle, bio, location, followers_count, following_count, posts_count, raw_payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.InternalID,
		profile.DisplayName,
		profile.Handle,
		profile.Bio,
		profile.Location,
		profile.FollowersCount,
		profile.FollowingCount,
		profile.PostsCount,
		profile.RawPayload,
	)
	if err != nil {
		slog.Info(err.Error())
		return translateError(err)
	}

	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT id, internal_id, display_name, handle, bio, location, followers_count, following_count, posts_count, raw_payload FROM profile WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.InternalID,
		&profile.DisplayName,
		&profile.Handle,
		&profile.Bio,
		&profile.Location,
		&profile.FollowersCount,
		&profile.FollowingCount,
		&profile.PostsCount,
		&profile.RawPayload,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &profile, nil
}
