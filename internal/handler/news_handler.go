package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-notes/internal/domain"
	"news-notes/internal/service"
)

// NewsHandler serves the public news pages.
type NewsHandler struct {
	news service.NewsServiceInterface
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(news service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{news: news}
}

// Home renders one page of the news listing, newest first. The page
// number comes from the ?page query parameter; anything unparsable
// means page one.
func (h *NewsHandler) Home(c *gin.Context) {
	pageNum, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		pageNum = 1
	}

	newsPage, err := h.news.HomePage(c.Request.Context(), pageNum)
	if err != nil {
		serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "home.html", page(c, "News", gin.H{
		"Page": newsPage,
	}))
}

// Detail renders a news item with its comment thread. Signed-in
// visitors also get the comment form.
func (h *NewsHandler) Detail(c *gin.Context) {
	detail, err := h.news.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, err)
		return
	}
	if detail == nil {
		renderNotFound(c)
		return
	}

	c.HTML(http.StatusOK, "news_detail.html", page(c, detail.News.Title, gin.H{
		"News":     detail.News,
		"Comments": detail.Comments,
		"Form":     &domain.CommentForm{},
		"Errors":   domain.FieldErrors(nil),
	}))
}
