package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/dbx"
	"github.com/dmitrijs2005/socialscribe/internal/logging"
	"github.com/dmitrijs2005/socialscribe/internal/server/archive"
	"github.com/dmitrijs2005/socialscribe/internal/server/generation"
	"github.com/dmitrijs2005/socialscribe/internal/server/metrics"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/dmitrijs2005/socialscribe/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/socialscribe/internal/server/validation"
	"github.com/google/uuid"
)

// TextGenerator produces post text for a brief.
type TextGenerator interface {
	Generate(ctx context.Context, b models.Brief) (generation.Result, error)
}

type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   TextGenerator
	archiver    archive.Archiver
	metrics     *metrics.Metrics
	logger      logging.Logger
	now         func() time.Time
	newID       func() string
}

// NewPostService wires the service. archiver and m may be nil.
func NewPostService(db *sql.DB, rm repomanager.RepositoryManager, gen TextGenerator,
	archiver archive.Archiver, m *metrics.Metrics, logger logging.Logger) *PostService {
	if archiver == nil {
		archiver = archive.NopArchiver{}
	}
	return &PostService{
		db:          db,
		repomanager: rm,
		generator:   gen,
		archiver:    archiver,
		metrics:     m,
		logger:      logger.With("module", "posts"),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// Generate creates a draft from b. Nothing is stored when generation fails.
func (s *PostService) Generate(ctx context.Context, b models.Brief) (*models.Post, error) {
	b.Topic = strings.TrimSpace(b.Topic)
	b.Constraints = strings.TrimSpace(b.Constraints)

	if err := validation.AsError(validation.ValidateBrief(b)); err != nil {
		return nil, err
	}

	res, err := s.generator.Generate(ctx, b)
	if err != nil {
		return nil, &common.GenerationError{Err: err}
	}

	now := s.now()
	post := &models.Post{
		ID:            s.newID(),
		Platform:      b.Platform,
		Tone:          b.Tone,
		Topic:         b.Topic,
		Constraints:   b.Constraints,
		GeneratedText: res.Text,
		FinalText:     res.Text,
		Approved:      false,
		ModelUsed:     res.ModelUsed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The brief is already valid here, so a broken record means the model
	// output is unusable.
	if err := validation.AsError(validation.ValidatePost(post)); err != nil {
		return nil, &common.GenerationError{Err: err}
	}

	if err := s.repomanager.Posts(s.db).Create(ctx, post); err != nil {
		s.logger.Error(ctx, "Failed to create post", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Post created", "id", post.ID, "model", post.ModelUsed)
	s.metrics.PostOperation("generate")

	return post, nil
}

// List returns posts newest first.
func (s *PostService) List(ctx context.Context, f models.ListFilter) ([]*models.Post, error) {
	posts, err := s.repomanager.Posts(s.db).List(ctx, f)
	if err != nil {
		s.logger.Error(ctx, "Failed to fetch posts", "error", err)
		return nil, err
	}

	s.logger.Debug(ctx, "Retrieved posts", "count", len(posts))
	s.metrics.PostOperation("list")

	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}

	post, err := s.repomanager.Posts(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.metrics.PostOperation("get")

	return post, nil
}

// Update applies p to the post with the given id. Approval can be granted but
// never withdrawn; approved posts stay editable.
func (s *PostService) Update(ctx context.Context, id string, p models.PostPatch) (*models.Post, error) {
	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}

	if err := validation.AsError(validation.ValidatePatch(p)); err != nil {
		return nil, err
	}

	var (
		post        *models.Post
		newApproval bool
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Posts(tx)

		current, err := repo.LockByID(ctx, id)
		if err != nil {
			return err
		}

		if p.Approved != nil {
			if current.Approved && !*p.Approved {
				return common.NewValidationError("An approved post cannot be unapproved")
			}
			newApproval = !current.Approved && *p.Approved
			current.Approved = *p.Approved
		}

		if p.FinalText != nil {
			current.FinalText = *p.FinalText
		}

		current.UpdatedAt = s.now()

		if err := validation.AsError(validation.ValidatePost(current)); err != nil {
			return err
		}

		if err := repo.Update(ctx, current); err != nil {
			return err
		}

		post = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Post updated", "id", id, "approved", post.Approved)
	s.metrics.PostOperation("update")

	if newApproval {
		if err := s.archiver.Archive(ctx, post); err != nil {
			s.logger.Warn(ctx, "Failed to archive approved post", "id", id, "error", err)
		}
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := validation.ValidateID(id); err != nil {
		return err
	}

	if err := s.repomanager.Posts(s.db).Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "Post deleted", "id", id)
	s.metrics.PostOperation("delete")

	return nil
}
