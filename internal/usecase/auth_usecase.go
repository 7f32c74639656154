package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// アクセストークンの発行はmain側の実装に任せる（テストで差し替える）
type TokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

type Clock interface {
	Now() time.Time
}

type AuthUsecase struct {
	userRepo   repo.UserRepository
	issuer     TokenIssuer
	clock      Clock
	bcryptCost int
}

func NewAuthUsecase(userRepo repo.UserRepository, issuer TokenIssuer, clock Clock, bcryptCost int) *AuthUsecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUsecase{
		userRepo:   userRepo,
		issuer:     issuer,
		clock:      clock,
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || len(username) > 50 {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid username")
	}
	if email == "" || !strings.Contains(email, "@") {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	// 先にチェックして分かりやすいエラーを返す。
	// レースはusers側の一意制約が最終防衛（Create側でErrConflict）。
	if _, err := u.userRepo.FindByUsername(ctx, username); err == nil {
		return AuthOutput{}, NewHTTPError(http.StatusConflict, "username already exists")
	} else if err != repo.ErrNotFound {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if _, err := u.userRepo.FindByEmail(ctx, email); err == nil {
		return AuthOutput{}, NewHTTPError(http.StatusConflict, "email already exists")
	} else if err != repo.ErrNotFound {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Role:         model.RoleCustomer,
		IsActive:     true,
	})
	if err == repo.ErrConflict {
		return AuthOutput{}, NewHTTPError(http.StatusConflict, "user already exists")
	}
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.issueFor(created)
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	user, err := u.userRepo.FindByUsername(ctx, username)
	if err == repo.ErrNotFound {
		// ユーザー有無は漏らさない
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return AuthOutput{}, NewHTTPError(http.StatusForbidden, "account is disabled")
	}

	return u.issueFor(user)
}

func (u *AuthUsecase) issueFor(user model.User) (AuthOutput, error) {
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, u.clock.Now())
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
	}, nil
}
