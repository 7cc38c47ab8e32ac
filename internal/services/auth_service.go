package services

import (
	"workhub_backend/internal/auth"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (string, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.WorkerProfileRepository
	tokens      *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.WorkerProfileRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	// Сложность пароля: клиенту перечисляются все нарушенные правила
	if violations := auth.ValidatePassword(req.Password); len(violations) > 0 {
		return nil, apperrors.ValidationError(map[string]interface{}{"password": violations})
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleWorker
	}
	if role != models.UserRoleWorker && role != models.UserRoleClient {
		return nil, apperrors.ErrInvalidUserRole
	}

	// Проверка дубликата ДО хеширования, чтобы не жечь bcrypt впустую.
	// Финальная защита - уникальные индексы в БД.
	exists, err := s.userRepo.ExistsByUsernameOrEmail(db, req.Username, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// Пользователь и профиль исполнителя создаются в одной транзакции:
	// либо оба, либо ни одного
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		if user.Role == models.UserRoleWorker {
			return s.profileRepo.Create(tx, &models.WorkerProfile{UserID: user.ID})
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Для неизвестного email и неверного пароля - одна ошибка
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

// Refresh - выпуск нового access токена по refresh токену.
// Refresh токен не хранится на сервере: проверяется только подпись,
// срок и kind, плюс живой lookup пользователя - удаленный пользователь
// теряет доступ сразу, даже с неистекшим токеном.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseToken(refreshToken, auth.TokenKindRefresh)
	if err != nil {
		if apperrors.Is(err, auth.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, claims.Subject)
	if err != nil {
		// Неизвестный пользователь намеренно дает 401, а не 404
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	return accessToken, nil
}
