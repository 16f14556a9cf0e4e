package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-notes/internal/domain"
	"news-notes/internal/metrics"
	"news-notes/internal/middleware"
	"news-notes/internal/policy"
	"news-notes/internal/service"
)

// CommentHandler serves comment creation under a news item and the
// edit and delete pages for existing comments.
type CommentHandler struct {
	comments service.CommentServiceInterface
	news     service.NewsServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface, news service.NewsServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments, news: news}
}

// authorize fetches the comment and applies the ownership policy. It
// writes the response itself on denial and reports false.
func (h *CommentHandler) authorize(c *gin.Context, id string) (*domain.Comment, bool) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		metrics.ObservePolicyDecision("comment", policy.DenyLogin.String())
		redirectToLogin(c)
		return nil, false
	}

	comment, err := h.comments.Get(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return nil, false
	}

	var ownerID string
	if comment != nil {
		ownerID = comment.AuthorID
	}
	decision := policy.Decide(actor, ownerID)
	metrics.ObservePolicyDecision("comment", decision.String())
	if decision != policy.Allow {
		renderNotFound(c)
		return nil, false
	}
	return comment, true
}

// commentsAnchor is where comment actions land the user afterwards.
func commentsAnchor(newsID string) string {
	return "/news/" + newsID + "#comments"
}

// Create posts a comment under a news item. A rejected submission,
// whether by validation or by moderation, re-renders the detail page
// with the form errors and stores nothing.
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	newsID := c.Param("id")
	detail, err := h.news.Detail(c.Request.Context(), newsID)
	if err != nil {
		serverError(c, err)
		return
	}
	if detail == nil {
		renderNotFound(c)
		return
	}

	var form domain.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		serverError(c, err)
		return
	}

	_, fieldErrs, err := h.comments.Create(c.Request.Context(), newsID, user.ID, &form)
	if err != nil {
		serverError(c, err)
		return
	}
	if fieldErrs != nil {
		c.HTML(http.StatusOK, "news_detail.html", page(c, detail.News.Title, gin.H{
			"News":     detail.News,
			"Comments": detail.Comments,
			"Form":     &form,
			"Errors":   fieldErrs,
		}))
		return
	}

	c.Redirect(http.StatusFound, commentsAnchor(newsID))
}

// EditForm renders the comment edit form for its author.
func (h *CommentHandler) EditForm(c *gin.Context) {
	comment, ok := h.authorize(c, c.Param("id"))
	if !ok {
		return
	}
	h.renderEdit(c, comment, &domain.CommentForm{Text: comment.Text}, nil)
}

// Edit rewrites the comment text, under the same moderation rules as
// creation, and returns to the thread.
func (h *CommentHandler) Edit(c *gin.Context) {
	comment, ok := h.authorize(c, c.Param("id"))
	if !ok {
		return
	}

	var form domain.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		serverError(c, err)
		return
	}

	fieldErrs, err := h.comments.Update(c.Request.Context(), comment, &form)
	if err != nil {
		serverError(c, err)
		return
	}
	if fieldErrs != nil {
		h.renderEdit(c, comment, &form, fieldErrs)
		return
	}

	c.Redirect(http.StatusFound, commentsAnchor(comment.NewsID))
}

// DeleteForm renders the delete confirmation page.
func (h *CommentHandler) DeleteForm(c *gin.Context) {
	comment, ok := h.authorize(c, c.Param("id"))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "comment_delete.html", page(c, "Delete comment", gin.H{
		"Comment": comment,
	}))
}

// Delete removes the comment and returns to the thread.
func (h *CommentHandler) Delete(c *gin.Context) {
	comment, ok := h.authorize(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), comment.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, commentsAnchor(comment.NewsID))
}

func (h *CommentHandler) renderEdit(c *gin.Context, comment *domain.Comment, form *domain.CommentForm, errs domain.FieldErrors) {
	c.HTML(http.StatusOK, "comment_edit.html", page(c, "Edit comment", gin.H{
		"Comment": comment,
		"Form":    form,
		"Errors":  errs,
	}))
}
