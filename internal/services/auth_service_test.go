package services

import (
	"testing"
	"time"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("service-test-secret", 30*time.Minute, 24*time.Hour)
}

func newAuthService(userRepo *mockUserRepo, profileRepo *mockWorkerProfileRepo) AuthService {
	if userRepo == nil {
		userRepo = &mockUserRepo{}
	}
	if profileRepo == nil {
		profileRepo = &mockWorkerProfileRepo{}
	}
	return NewAuthService(userRepo, profileRepo, newTestTokens())
}

// TestRegister_WeakPassword - в деталях перечислены все нарушенные правила
func TestRegister_WeakPassword(t *testing.T) {
	svc := newAuthService(nil, nil)

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Username: "worker1",
		Email:    "worker1@test.com",
		Password: "short", // короткий и без цифры
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	details, ok := appErr.Details.(map[string]interface{})
	require.True(t, ok)
	violations, ok := details["password"].([]string)
	require.True(t, ok)
	assert.Len(t, violations, 2)
}

// TestRegister_InvalidRole - неизвестная роль отклоняется до обращения к БД
func TestRegister_InvalidRole(t *testing.T) {
	svc := newAuthService(nil, nil)

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Username: "admin1",
		Email:    "admin1@test.com",
		Password: "password1",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

// TestRegister_DuplicateUser - занятый username/email дает 409,
// bcrypt при этом не вызывается
func TestRegister_DuplicateUser(t *testing.T) {
	userRepo := &mockUserRepo{
		ExistsFn: func(username, email string) (bool, error) {
			return true, nil
		},
	}
	svc := newAuthService(userRepo, nil)

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Username: "taken",
		Email:    "taken@test.com",
		Password: "password1",
	})

	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

// TestLogin_UnknownEmailAndBadPassword - обе ситуации дают
// одинаковый ответ, чтобы не раскрывать существование аккаунта
func TestLogin_UnknownEmailAndBadPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-pass1")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		FindByEmailFn: func(email string) (*models.User, error) {
			if email == "known@test.com" {
				return &models.User{PasswordHash: hash}, nil
			}
			return nil, repositories.ErrUserNotFound
		},
	}
	svc := newAuthService(userRepo, nil)

	_, err = svc.Login(nil, &dto.LoginRequest{Email: "ghost@test.com", Password: "whatever1"})
	unknownErr := err

	_, err = svc.Login(nil, &dto.LoginRequest{Email: "known@test.com", Password: "wrong-pass1"})
	badPassErr := err

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, badPassErr, apperrors.ErrInvalidCredentials)
}

// TestLogin_Success - выдаются оба токена, и они парсятся
// с правильным subject и kind
func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("correct-pass1")
	require.NoError(t, err)

	user := &models.User{
		Username:     "worker1",
		Email:        "worker1@test.com",
		PasswordHash: hash,
		Role:         models.UserRoleWorker,
	}
	user.ID = "uid-123"

	userRepo := &mockUserRepo{
		FindByEmailFn: func(email string) (*models.User, error) {
			return user, nil
		},
	}
	tokens := newTestTokens()
	svc := NewAuthService(userRepo, &mockWorkerProfileRepo{}, tokens)

	resp, err := svc.Login(nil, &dto.LoginRequest{Email: "worker1@test.com", Password: "correct-pass1"})
	require.NoError(t, err)

	accessClaims, err := tokens.ParseToken(resp.AccessToken, auth.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", accessClaims.Subject)

	refreshClaims, err := tokens.ParseToken(resp.RefreshToken, auth.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", refreshClaims.Subject)

	assert.Equal(t, "worker1", resp.User.Username)
}

// TestRefresh_RejectsAccessToken - access токен не работает как refresh
func TestRefresh_RejectsAccessToken(t *testing.T) {
	tokens := newTestTokens()
	userRepo := &mockUserRepo{
		FindByIDFn: func(id string) (*models.User, error) {
			u := &models.User{}
			u.ID = id
			return u, nil
		},
	}
	svc := NewAuthService(userRepo, &mockWorkerProfileRepo{}, tokens)

	accessToken, err := tokens.GenerateAccessToken("uid-123")
	require.NoError(t, err)

	_, err = svc.Refresh(nil, accessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestRefresh_DeletedUser - валидный refresh токен удаленного
// пользователя дает 401, а не 404
func TestRefresh_DeletedUser(t *testing.T) {
	tokens := newTestTokens()
	svc := NewAuthService(&mockUserRepo{}, &mockWorkerProfileRepo{}, tokens)

	refreshToken, err := tokens.GenerateRefreshToken("ghost-uid")
	require.NoError(t, err)

	_, err = svc.Refresh(nil, refreshToken)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestRefresh_Success - по живому пользователю выдается новый access токен
func TestRefresh_Success(t *testing.T) {
	tokens := newTestTokens()
	userRepo := &mockUserRepo{
		FindByIDFn: func(id string) (*models.User, error) {
			u := &models.User{}
			u.ID = id
			return u, nil
		},
	}
	svc := NewAuthService(userRepo, &mockWorkerProfileRepo{}, tokens)

	refreshToken, err := tokens.GenerateRefreshToken("uid-123")
	require.NoError(t, err)

	accessToken, err := svc.Refresh(nil, refreshToken)
	require.NoError(t, err)

	claims, err := tokens.ParseToken(accessToken, auth.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.Subject)
}
