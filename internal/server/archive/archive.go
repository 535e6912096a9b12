// Package archive copies approved posts to durable object storage.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/socialscribe/internal/server/models"
)

// Archiver stores a snapshot of an approved post.
type Archiver interface {
	Archive(ctx context.Context, post *models.Post) error
}

// NopArchiver is used when no archive bucket is configured.
type NopArchiver struct{}

func (NopArchiver) Archive(ctx context.Context, post *models.Post) error {
	return nil
}

// ObjectKey returns the storage key of an approved post snapshot, grouped by
// approval day.
func ObjectKey(post *models.Post, approvedAt time.Time) string {
	d := approvedAt.UTC()
	return fmt.Sprintf("approved/%04d/%02d/%02d/%s.json", d.Year(), d.Month(), d.Day(), post.ID)
}
