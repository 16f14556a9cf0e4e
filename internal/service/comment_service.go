package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news-notes/internal/domain"
	"news-notes/internal/logger"
	"news-notes/internal/metrics"
	"news-notes/internal/moderation"
	"news-notes/internal/repository"
	"news-notes/internal/validator"
)

// CommentService implements the comment use-cases.
type CommentService struct {
	comments  repository.CommentRepository
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, v *validator.Validator) *CommentService {
	return &CommentService{comments: comments, validator: v}
}

func rejectionReason(errs domain.FieldErrors) string {
	if errs.Get("text") == moderation.Warning {
		return "moderation"
	}
	return "validation"
}

// Create validates and moderates the form, then persists the comment.
// The author is always the submitting identity and the creation time is
// set here, never taken from the form.
func (s *CommentService) Create(ctx context.Context, newsID, authorID string, form *domain.CommentForm) (*domain.Comment, domain.FieldErrors, error) {
	if errs := s.validator.ValidateComment(form); errs != nil {
		metrics.ObserveCommentRejected(rejectionReason(errs))
		return nil, errs, nil
	}

	comment := &domain.Comment{
		ID:       uuid.New().String(),
		NewsID:   newsID,
		AuthorID: authorID,
		Text:     form.Text,
		Created:  time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.ObserveCommentOperation("created")
	logger.WithUser(authorID).Info("comment created", slog.String("news_id", newsID))
	return comment, nil, nil
}

// Update rewrites the comment text under the same moderation rules.
func (s *CommentService) Update(ctx context.Context, comment *domain.Comment, form *domain.CommentForm) (domain.FieldErrors, error) {
	if errs := s.validator.ValidateComment(form); errs != nil {
		metrics.ObserveCommentRejected(rejectionReason(errs))
		return errs, nil
	}

	updated := *comment
	updated.Text = form.Text
	if err := s.comments.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	metrics.ObserveCommentOperation("updated")
	return nil, nil
}

// Delete removes the comment.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	metrics.ObserveCommentOperation("deleted")
	return nil
}

// Get returns the comment with the ID, or nil when absent.
func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.comments.GetByID(ctx, id)
}
