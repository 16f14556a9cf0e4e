package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-notes/internal/domain"
	"news-notes/internal/middleware"
	"news-notes/internal/mocks"
)

// testEnv wires a full router over mocked services so tests exercise
// routing, middleware and templates together.
type testEnv struct {
	router   *gin.Engine
	notes    *mocks.NoteServiceInterface
	news     *mocks.NewsServiceInterface
	comments *mocks.CommentServiceInterface
	auth     *mocks.AuthServiceInterface
	users    *mocks.UserRepository
	sessions *middleware.SessionManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		notes:    mocks.NewNoteServiceInterface(t),
		news:     mocks.NewNewsServiceInterface(t),
		comments: mocks.NewCommentServiceInterface(t),
		auth:     mocks.NewAuthServiceInterface(t),
		users:    mocks.NewUserRepository(t),
		sessions: middleware.NewSessionManager("test-secret", time.Hour),
	}

	env.router = NewRouter(RouterConfig{
		Notes:    NewNoteHandler(env.notes),
		News:     NewNewsHandler(env.news),
		Comments: NewCommentHandler(env.comments, env.news),
		Auth:     NewAuthHandler(env.auth, env.sessions),
		Health:   NewHealthHandler(nil),
		Sessions: env.sessions,
		Users:    env.users,
	})
	return env
}

// sessionCookie returns a valid session cookie for the user and teaches
// the user repository to resolve it.
func (e *testEnv) sessionCookie(t *testing.T, user *domain.User) *http.Cookie {
	t.Helper()
	token, err := e.sessions.Issue(user.ID)
	require.NoError(t, err)
	e.users.EXPECT().GetByID(mock.Anything, user.ID).Return(user, nil).Maybe()
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
