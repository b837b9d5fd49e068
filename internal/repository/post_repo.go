package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

// PostRepo persists generated posts in Postgres. The archive is optional
// infrastructure: with a nil pool every operation is a no-op, mirroring
// the cache's degraded mode.
type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

// Enabled reports whether the archive has a backing database.
func (r *PostRepo) Enabled() bool { return r.pool != nil }

// Save upserts the archive row for a video. Regenerating a post
// overwrites the previous revision.
func (r *PostRepo) Save(ctx context.Context, rec *model.PostRecord) error {
	if r.pool == nil {
		return nil
	}
	query := `
		INSERT INTO posts (video_id, title, html, model, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (video_id) DO UPDATE
		SET title = EXCLUDED.title,
		    html = EXCLUDED.html,
		    model = EXCLUDED.model,
		    generated_at = EXCLUDED.generated_at`

	_, err := r.pool.Exec(ctx, query, rec.VideoID, rec.Title, rec.HTML, rec.Model, rec.GeneratedAt)
	return err
}

// FindByVideoID returns the archived post for a video, or a tagged
// not-found error.
func (r *PostRepo) FindByVideoID(ctx context.Context, videoID string) (*model.PostRecord, error) {
	if r.pool == nil {
		return nil, model.E(model.KindNotFound, "repo.posts", "archive disabled", nil)
	}
	query := `
		SELECT video_id, title, html, model, generated_at
		FROM posts
		WHERE video_id = $1`

	var rec model.PostRecord
	err := r.pool.QueryRow(ctx, query, videoID).Scan(
		&rec.VideoID, &rec.Title, &rec.HTML, &rec.Model, &rec.GeneratedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.E(model.KindNotFound, "repo.posts", "post not archived", err)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecent returns the most recently generated posts, newest first.
func (r *PostRepo) ListRecent(ctx context.Context, limit int) ([]model.PostRecord, error) {
	if r.pool == nil {
		return []model.PostRecord{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := `
		SELECT video_id, title, html, model, generated_at
		FROM posts
		ORDER BY generated_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.PostRecord
	for rows.Next() {
		var rec model.PostRecord
		err := rows.Scan(&rec.VideoID, &rec.Title, &rec.HTML, &rec.Model, &rec.GeneratedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []model.PostRecord{}
	}
	return records, rows.Err()
}

// Count returns the number of archived posts.
func (r *PostRepo) Count(ctx context.Context) (int64, error) {
	if r.pool == nil {
		return 0, nil
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&n)
	return n, err
}
