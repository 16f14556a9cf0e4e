package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"news-notes/internal/domain"
	"news-notes/internal/middleware"
	"news-notes/internal/service"
)

// AuthHandler serves login, signup and logout.
type AuthHandler struct {
	auth     service.AuthServiceInterface
	sessions *middleware.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthServiceInterface, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// safeNext keeps redirects on this site. Only a local path is honored;
// anything else falls back to the news home.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", page(c, "Log in", gin.H{
		"Next":     c.Query("next"),
		"Username": "",
	}))
}

// Login verifies the credentials, sets the session cookie and follows
// the next parameter back to where the visitor came from. Bad
// credentials re-render the form with a single generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", page(c, "Log in", gin.H{
				"Next":       c.Query("next"),
				"Username":   username,
				"LoginError": "Please enter a correct username and password.",
			}))
			return
		}
		serverError(c, err)
		return
	}

	if err := h.sessions.SetCookie(c, user.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(c *gin.Context) {
	h.renderSignup(c, &domain.SignupForm{}, nil)
}

// Signup creates the account and sends the new user to the login page.
func (h *AuthHandler) Signup(c *gin.Context) {
	var form domain.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		serverError(c, err)
		return
	}

	_, fieldErrs, err := h.auth.Signup(c.Request.Context(), &form)
	if err != nil {
		serverError(c, err)
		return
	}
	if fieldErrs != nil {
		h.renderSignup(c, &form, fieldErrs)
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

// Logout clears the session cookie and returns to the news home.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderSignup(c *gin.Context, form *domain.SignupForm, errs domain.FieldErrors) {
	c.HTML(http.StatusOK, "signup.html", page(c, "Sign up", gin.H{
		"Form":   form,
		"Errors": errs,
	}))
}
