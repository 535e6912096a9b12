package posts

import (
	"context"

	"github.com/dmitrijs2005/socialscribe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context, filter models.ListFilter) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	LockByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}
