package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenKind = errors.New("wrong token kind")
)

// Claims - полезная нагрузка JWT: subject (user id), срок действия
// и kind, чтобы access токен нельзя было подсунуть вместо refresh.
type Claims struct {
	Kind TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет подписанные HS256 токены.
// Состояние на сервере не хранится: отзыв возможен только сменой секрета.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken выпускает короткоживущий access токен
func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.generate(userID, TokenKindAccess, m.accessTTL)
}

// GenerateRefreshToken выпускает долгоживущий refresh токен
func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.generate(userID, TokenKindRefresh, m.refreshTTL)
}

func (m *TokenManager) generate(userID string, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims.
// Подпись проверяется ДО того, как payload считается доверенным:
// ParseWithClaims не отдает валидный токен без успешной проверки MAC.
// Грейс-периода по exp нет.
func (m *TokenManager) ParseToken(tokenStr string, expectedKind TokenKind) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Kind != expectedKind {
		return nil, ErrWrongTokenKind
	}

	return claims, nil
}

// AccessTTL возвращает время жизни access токена (для cookie max-age)
func (m *TokenManager) AccessTTL() time.Duration { return m.accessTTL }

// RefreshTTL возвращает время жизни refresh токена (для cookie max-age)
func (m *TokenManager) RefreshTTL() time.Duration { return m.refreshTTL }
