package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kmazur/tweetvault/internal/models"
)

type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Post, error)
	CountByOwnerID(ctx context.Context, ownerID string) (int, error)
	CreateBatch(ctx context.Context, posts []*models.Post) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// CreateBatch inserts all posts inside one transaction. Any failure rolls the
// whole batch back, so a duplicate id leaves the posts table untouched.
func (r *postRepository) CreateBatch(ctx context.Context, posts []*models.Post) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	query := `
		INSERT INTO posts (id, owner_id, created_at, text, like_count, repost_count, reply_count, quote_count, raw_payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, post := range posts {
		_, err := tx.ExecContext(ctx, query,
			post.ID,
			post.OwnerID,
			post.CreatedAt,
			post.Text,
			post.LikeCount,
			post.RepostCount,
			post.ReplyCount,
			post.QuoteCount,
			post.RawPayload,
		)
		if err != nil {
			slog.Info(err.Error())
			tx.Rollback()
			return translateError(err)
		}
	}

	return tx.Commit()
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT id, owner_id, created_at, text, like_count, repost_count, reply_count, quote_count, raw_payload FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.OwnerID,
		&post.CreatedAt,
		&post.Text,
		&post.LikeCount,
		&post.RepostCount,
		&post.ReplyCount,
		&post.QuoteCount,
		&post.RawPayload,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Post, error) {
	query := `SELECT id, owner_id, created_at, text, like_count, repost_count, reply_count, quote_count, raw_payload FROM posts WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID,
			&post.OwnerID,
			&post.CreatedAt,
			&post.Text,
			&post.LikeCount,
			&post.RepostCount,
			&post.ReplyCount,
			&post.QuoteCount,
			&post.RawPayload,
		)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) CountByOwnerID(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE owner_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}
