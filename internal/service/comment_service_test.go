package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-notes/internal/domain"
	"news-notes/internal/mocks"
	"news-notes/internal/moderation"
	"news-notes/internal/service"
)

func TestCommentService_Create_StoresAuthorAndTime(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	var stored *domain.Comment
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(ctx context.Context, comment *domain.Comment) {
			stored = comment
		}).
		Return(nil)

	form := &domain.CommentForm{Text: "Nice article"}
	comment, fieldErrs, err := svc.Create(context.Background(), "news-1", "user-1", form)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, comment)
	assert.Equal(t, "news-1", comment.NewsID)
	assert.Equal(t, "user-1", comment.AuthorID)
	assert.Equal(t, "Nice article", comment.Text)
	assert.False(t, comment.Created.IsZero())
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, comment, stored)
}

func TestCommentService_Create_RejectsBannedWord(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	form := &domain.CommentForm{Text: "You are a scoundrel, sir"}
	comment, fieldErrs, err := svc.Create(context.Background(), "news-1", "user-1", form)

	require.NoError(t, err)
	assert.Nil(t, comment)
	require.NotNil(t, fieldErrs)
	assert.Equal(t, moderation.Warning, fieldErrs.Get("text"))
}

func TestCommentService_Create_BannedWordInsideAnotherWord(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	form := &domain.CommentForm{Text: "what a villainous plan"}
	comment, fieldErrs, err := svc.Create(context.Background(), "news-1", "user-1", form)

	require.NoError(t, err)
	assert.Nil(t, comment)
	require.NotNil(t, fieldErrs)
	assert.Equal(t, moderation.Warning, fieldErrs.Get("text"))
}

func TestCommentService_Create_RequiresText(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	comment, fieldErrs, err := svc.Create(context.Background(), "news-1", "user-1", &domain.CommentForm{})

	require.NoError(t, err)
	assert.Nil(t, comment)
	assert.True(t, fieldErrs.Has("text"))
}

func TestCommentService_Update_ModeratedEditRejected(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	existing := &domain.Comment{ID: "comment-1", NewsID: "news-1", AuthorID: "user-1", Text: "fine"}
	form := &domain.CommentForm{Text: "now with villain inside"}

	fieldErrs, err := svc.Update(context.Background(), existing, form)

	require.NoError(t, err)
	require.NotNil(t, fieldErrs)
	assert.Equal(t, moderation.Warning, fieldErrs.Get("text"))
	// The original text survives a rejected edit.
	assert.Equal(t, "fine", existing.Text)
}

func TestCommentService_Update_ReplacesText(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	var stored *domain.Comment
	repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(ctx context.Context, comment *domain.Comment) {
			stored = comment
		}).
		Return(nil)

	existing := &domain.Comment{ID: "comment-1", NewsID: "news-1", AuthorID: "user-1", Text: "old"}
	fieldErrs, err := svc.Update(context.Background(), existing, &domain.CommentForm{Text: "new"})

	require.NoError(t, err)
	assert.Nil(t, fieldErrs)
	require.NotNil(t, stored)
	assert.Equal(t, "comment-1", stored.ID)
	assert.Equal(t, "new", stored.Text)
}

func TestCommentService_Delete(t *testing.T) {
	repo := mocks.NewCommentRepository(t)
	svc := service.NewCommentService(repo, newTestValidator())

	repo.EXPECT().Delete(mock.Anything, "comment-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "comment-1"))
}
