package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"news-notes/internal/domain"
	"news-notes/internal/logger"
	"news-notes/internal/middleware"
)

// page assembles the common template data every page needs on top of
// the handler-specific fields.
func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["User"] = middleware.CurrentUser(c)
	return data
}

// redirectToLogin sends an anonymous request to the login page,
// carrying the original path so login can come back to it. The path is
// query-escaped except for slashes, so it survives a round trip through
// the next parameter.
func redirectToLogin(c *gin.Context) {
	next := strings.ReplaceAll(url.QueryEscape(c.Request.URL.Path), "%2F", "/")
	c.Redirect(http.StatusFound, "/auth/login?next="+next)
}

// renderNotFound renders the 404 page. Ownership failures use it too,
// so an outsider cannot tell a hidden resource from a missing one.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", page(c, "Page not found", nil))
}

// serverError logs the failure and answers with a bare 500.
func serverError(c *gin.Context, err error) {
	logger.WithRequestID(middleware.GetRequestID(c)).Error("request failed", slog.Any("error", err))
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// requireUser returns the authenticated user, or redirects to login and
// reports false.
func requireUser(c *gin.Context) (*domain.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		redirectToLogin(c)
		return nil, false
	}
	return user, true
}
