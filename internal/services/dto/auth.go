package dto

import (
	"time"

	"workhub_backend/internal/models"
)

// RegisterRequest - запрос регистрации.
// Сложность пароля (цифра + буква) проверяется в сервисе,
// чтобы перечислить клиенту все нарушенные правила разом.
type RegisterRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=120"`
	Name     string          `json:"name" validate:"omitempty,max=120"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ с токенами.
// Токены дублируются в теле ответа (помимо cookies), чтобы
// упростить работу из Postman и нефраузерных клиентов.
type LoginResponse struct {
	Message      string        `json:"message"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

// UserResponse - публичное представление пользователя (без хеша пароля)
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserResponse строит UserResponse из модели
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
