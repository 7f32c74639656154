package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"
)

type stubIssuer struct{}

func (s *stubIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return "stub-token", now.Add(15 * time.Minute), nil
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newAuthFixture() (*usecase.AuthUsecase, *UserRepoMock) {
	users := new(UserRepoMock)
	clock := &fixedClock{t: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	// テストはbcrypt最小コストで回す
	uc := usecase.NewAuthUsecase(users, &stubIssuer{}, clock, bcrypt.MinCost)
	return uc, users
}

func TestRegister_Success(t *testing.T) {
	uc, users := newAuthFixture()

	users.On("FindByUsername", mock.Anything, "taro").Return(model.User{}, repo.ErrNotFound)
	users.On("FindByEmail", mock.Anything, "taro@example.com").Return(model.User{}, repo.ErrNotFound)

	var created model.User
	users.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.User) }).
		Return(model.User{
			ID: 1, Username: "taro", Email: "taro@example.com", Role: model.RoleCustomer, IsActive: true,
		}, nil)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taro",
		Email:    "taro@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "stub-token", out.Token)
	assert.Equal(t, string(model.RoleCustomer), out.Role)

	// 平文は保存されない
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
	assert.Equal(t, model.RoleCustomer, created.Role)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, users := newAuthFixture()

	users.On("FindByUsername", mock.Anything, "taro").Return(model.User{ID: 1, Username: "taro"}, nil)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taro",
		Email:    "other@example.com",
		Password: "password123",
	})

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusConflict, he.Status)
	}
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taro",
		Email:    "taro@example.com",
		Password: "short",
	})
	assertErrContains(t, err, "at least 8 characters")
}

func TestLogin_Success(t *testing.T) {
	uc, users := newAuthFixture()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByUsername", mock.Anything, "taro").Return(model.User{
		ID: 1, Username: "taro", Email: "taro@example.com",
		PasswordHash: string(hash), Role: model.RoleCustomer, IsActive: true,
	}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{Username: "taro", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "stub-token", out.Token)
	assert.Equal(t, int64(1), out.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users := newAuthFixture()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByUsername", mock.Anything, "taro").Return(model.User{
		ID: 1, Username: "taro", PasswordHash: string(hash), IsActive: true,
	}, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "taro", Password: "wrongpass"})

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusUnauthorized, he.Status)
		assert.Equal(t, "invalid credentials", he.Message)
	}
}

// 存在しないユーザーも同じメッセージ（有無を漏らさない）
func TestLogin_UnknownUser(t *testing.T) {
	uc, users := newAuthFixture()

	users.On("FindByUsername", mock.Anything, "ghost").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "ghost", Password: "password123"})

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusUnauthorized, he.Status)
		assert.Equal(t, "invalid credentials", he.Message)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	uc, users := newAuthFixture()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByUsername", mock.Anything, "taro").Return(model.User{
		ID: 1, Username: "taro", PasswordHash: string(hash), IsActive: false,
	}, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "taro", Password: "password123"})

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusForbidden, he.Status)
	}
}
