package repository

import (
	"context"
	"database/sql"
	"fmt"
)

const profileTable = `
	CREATE TABLE IF NOT EXISTS profile (
		id TEXT PRIMARY KEY,
		internal_id TEXT NOT NULL,
		display_name TEXT NOT NULL,
		handle TEXT NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		followers_count INTEGER NOT NULL DEFAULT 0,
		following_count INTEGER NOT NULL DEFAULT 0,
		posts_count INTEGER NOT NULL DEFAULT 0,
		raw_payload JSONB
	)
`

const postsTable = `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL REFERENCES profile (id),
		created_at TEXT NOT NULL,
		text TEXT NOT NULL DEFAULT '',
		like_count INTEGER NOT NULL DEFAULT 0,
		repost_count INTEGER NOT NULL DEFAULT 0,
		reply_count INTEGER NOT NULL DEFAULT 0,
		quote_count INTEGER NOT NULL DEFAULT 0,
		raw_payload JSONB
	)
`

// EnsureSchema creates the profile and posts tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{profileTable, postsTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
