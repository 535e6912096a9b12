// Package posts provides the PostgreSQL-backed repository for post records.
package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/dbx"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
)

const selectColumns = `id, platform, tone, topic, constraints_text, generated_text, final_text, approved, model_used, created_at, updated_at`

// PostgresRepository implements post storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(s rowScanner) (*models.Post, error) {
	var p models.Post
	err := s.Scan(
		&p.ID, &p.Platform, &p.Tone, &p.Topic, &p.Constraints,
		&p.GeneratedText, &p.FinalText, &p.Approved, &p.ModelUsed,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post. The caller assigns ID and timestamps.
func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, platform, tone, topic, constraints_text, generated_text, final_text, approved, model_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Platform, post.Tone, post.Topic, post.Constraints,
		post.GeneratedText, post.FinalText, post.Approved, post.ModelUsed,
		post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns posts newest first, optionally filtered by approval state.
func (r *PostgresRepository) List(ctx context.Context, filter models.ListFilter) ([]*models.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if filter.Approved != nil {
		query := `SELECT ` + selectColumns + ` FROM posts WHERE approved=$1 ORDER BY created_at DESC, id DESC`
		rows, err = r.db.QueryContext(ctx, query, *filter.Approved)
	} else {
		query := `SELECT ` + selectColumns + ` FROM posts ORDER BY created_at DESC, id DESC`
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns one post or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + selectColumns + ` FROM posts WHERE id=$1`
	return r.getOne(ctx, query, id)
}

// LockByID is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *PostgresRepository) LockByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + selectColumns + ` FROM posts WHERE id=$1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query, id string) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select post: %w", err)
	}
	return p, nil
}

// Update writes the mutable fields of post.
func (r *PostgresRepository) Update(ctx context.Context, post *models.Post) error {
	query := `UPDATE posts SET final_text=$2, approved=$3, updated_at=$4 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, post.ID, post.FinalText, post.Approved, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes the post with the given id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
