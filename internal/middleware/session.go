package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"news-notes/internal/domain"
	"news-notes/internal/repository"
)

const (
	// SessionCookie is the name of the session cookie.
	SessionCookie = "session"
	// CurrentUserKey is the gin context key holding the resolved user.
	CurrentUserKey = "current_user"
)

// SessionManager issues and verifies signed session tokens carried in a
// cookie. Tokens are HS256 JWTs whose subject is the user ID; the
// middleware resolves the subject to a stored user on every request, so
// a deleted user's token stops working immediately.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager creates a SessionManager with the given signing
// secret and session lifetime.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed session token for the user.
func (m *SessionManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify parses a session token and returns the user ID it carries.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return subject, nil
}

// SetCookie writes the session cookie for the user onto the response.
func (m *SessionManager) SetCookie(c *gin.Context, userID string) error {
	token, err := m.Issue(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// ClearCookie removes the session cookie.
func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// Session returns middleware that resolves the session cookie to a
// stored user and exposes it via CurrentUser. Requests without a valid
// session proceed anonymously; handlers decide what that means.
func (m *SessionManager) Session(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err == nil && cookie != "" {
			if userID, err := m.Verify(cookie); err == nil {
				if user, err := users.GetByID(c.Request.Context(), userID); err == nil && user != nil {
					c.Set(CurrentUserKey, user)
				}
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil
// for anonymous requests.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(CurrentUserKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
