package handlers

import (
	"net/http"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/middleware"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokens      *auth.TokenManager
	userRepo    repositories.UserRepository
	production  bool
}

func NewAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
	env string,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokens:      tokens,
		userRepo:    userRepo,
		production:  env == "production",
	}
}

// RegisterRoutes регистрирует маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
	}

	me := rg.Group("/auth")
	me.Use(middleware.AuthMiddleware(h.tokens, h.userRepo))
	{
		me.GET("/me", h.Me)
	}
}

// Register
// @Summary      Регистрация пользователя
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Данные регистрации"
// @Success      201 {object} dto.UserResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login
// @Summary      Вход по email и паролю
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Учетные данные"
// @Success      200 {object} dto.LoginResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, "access_token", response.AccessToken, int(h.tokens.AccessTTL().Seconds()))
	h.setTokenCookie(c, "refresh_token", response.RefreshToken, int(h.tokens.RefreshTTL().Seconds()))

	c.JSON(http.StatusOK, response)
}

// Refresh - новый access токен по refresh cookie.
// Refresh токен принимается ТОЛЬКО из cookie, не из заголовка.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Refresh token missing"))
		return
	}

	db := h.GetDB(c)

	accessToken, err := h.authService.Refresh(db, refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, "access_token", accessToken, int(h.tokens.AccessTTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message":      "Token refreshed",
		"access_token": accessToken,
	})
}

// Logout - токены stateless, на сервере отзывать нечего: просто
// гасим обе cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "access_token", "", -1)
	h.setTokenCookie(c, "refresh_token", "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// Me - текущий аутентифицированный пользователь
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// setTokenCookie выставляет HTTP-only cookie с SameSite=Strict;
// Secure включается в production-окружении
func (h *AuthHandler) setTokenCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", "", h.production, true)
}
