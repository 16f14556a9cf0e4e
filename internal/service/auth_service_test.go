package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"news-notes/internal/domain"
	"news-notes/internal/mocks"
	"news-notes/internal/repository"
	"news-notes/internal/service"
)

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, newTestValidator())

	var stored *domain.User
	users.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(ctx context.Context, user *domain.User) {
			stored = user
		}).
		Return(nil)

	form := &domain.SignupForm{Username: "newuser", Name: "New User", Password: "secret-password"}
	user, fieldErrs, err := svc.Signup(context.Background(), form)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, user)
	assert.Equal(t, "newuser", stored.Username)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-password")))
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, newTestValidator())

	users.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(repository.ErrDuplicateUsername)

	form := &domain.SignupForm{Username: "taken", Password: "secret-password"}
	user, fieldErrs, err := svc.Signup(context.Background(), form)

	require.NoError(t, err)
	assert.Nil(t, user)
	require.NotNil(t, fieldErrs)
	assert.True(t, fieldErrs.Has("username"))
}

func TestAuthService_Signup_RejectsShortPassword(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, newTestValidator())

	form := &domain.SignupForm{Username: "someone", Password: "short"}
	user, fieldErrs, err := svc.Signup(context.Background(), form)

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.True(t, fieldErrs.Has("password"))
}

func TestAuthService_Login_Success(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, newTestValidator())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "user-1", Username: "someone", PasswordHash: string(hash)}
	users.EXPECT().GetByUsername(mock.Anything, "someone").Return(stored, nil)

	user, err := svc.Login(context.Background(), "someone", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, newTestValidator())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "user-1", Username: "someone", PasswordHash: string(hash)}
	users.EXPECT().GetByUsername(mock.Anything, "someone").Return(stored, nil)

	user, err := svc.Login(context.Background(), "someone", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, newTestValidator())

	users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, nil)

	user, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Nil(t, user)
}
