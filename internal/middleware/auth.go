package middleware

import (
	"net/http"
	"strings"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/repositories"
	"workhub_backend/pkg/apperrors"
	"workhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const missingTokenMessage = "Authentication required. Provide 'Authorization: Bearer <token>' header or 'access_token' cookie."

// AuthMiddleware - шлюз сессии: достает access токен из Bearer-заголовка
// или cookie, проверяет подпись и срок, и разрешает subject в живого
// пользователя. Удаленный пользователь теряет доступ сразу, даже с
// неистекшим токеном - поэтому lookup в БД на каждый запрос.
//
// Неизвестный пользователь при валидном токене дает 401 (не 404),
// чтобы не раскрывать существование аккаунтов.
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := extractToken(c)
		if rawToken == "" {
			abortUnauthorized(c, apperrors.NewUnauthorizedError(missingTokenMessage))
			return
		}

		claims, err := tokens.ParseToken(rawToken, auth.TokenKindAccess)
		if err != nil {
			if apperrors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, apperrors.ErrTokenExpired)
				return
			}
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		db := dbFromContext(c)
		user, err := userRepo.FindByID(db, claims.Subject)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token subject did not resolve to a user",
				"subject", claims.Subject,
			)
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		// Принципал кладется в контекст один раз; дальше хендлеры
		// достают его через BaseHandler.CurrentUser и передают в
		// сервисы явным аргументом
		c.Set(string(contextkeys.CurrentUserKey), user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// extractToken: сначала Bearer-заголовок, затем cookie access_token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: appErr})
}

// dbFromContext достает *gorm.DB, положенный DBMiddleware
func dbFromContext(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		panic("critical error: DBMiddleware did not set the db key")
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		panic("critical error: db in context has incorrect type")
	}
	return db
}
