package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister_Worker - регистрация исполнителя создает и пользователя,
// и профиль исполнителя
func TestRegister_Worker(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	suffix := helpers.UniqueSuffix()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "worker_" + suffix,
		"email":    fmt.Sprintf("worker_%s@test.com", suffix),
		"password": "password1",
		"role":     "worker",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "User registered successfully")
	assert.NotContains(t, body, "password", "password hash must not leak into the response")

	var user models.User
	require.NoError(t, ts.DB.First(&user, "username = ?", "worker_"+suffix).Error)
	assert.Equal(t, models.UserRoleWorker, user.Role)

	var profile models.WorkerProfile
	assert.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
}

// TestRegister_Client - заказчику профиль исполнителя не создается
func TestRegister_Client(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, user := helpers.RegisterAndLoginClient(t, ts)

	var count int64
	ts.DB.Model(&models.WorkerProfile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

// TestRegister_WeakPassword - перечислены ВСЕ нарушенные правила
func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	suffix := helpers.UniqueSuffix()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "weak_" + suffix,
		"email":    fmt.Sprintf("weak_%s@test.com", suffix),
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "at least 8 characters")
	assert.Contains(t, body, "at least one digit")
}

// TestRegister_NoBody - запрос без тела = пустой объект:
// клиент получает список всех обязательных полей
func TestRegister_NoBody(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "username")
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
}

// TestRegister_Duplicate - повторная регистрация с тем же email дает 409
func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, user := helpers.RegisterAndLoginClient(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "another_" + helpers.UniqueSuffix(),
		"email":    user.Email,
		"password": "password1",
	})

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already exists")
}

// TestLogin_SetsCookies - логин выдает оба токена и кладет их
// в HTTP-only cookies
func TestLogin_SetsCookies(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, user := helpers.RegisterAndLoginClient(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	assert.Contains(t, body, "access_token")
	assert.Contains(t, body, "refresh_token")

	cookies := map[string]*http.Cookie{}
	for _, c := range res.Cookies() {
		cookies[c.Name] = c
	}
	require.Contains(t, cookies, "access_token")
	require.Contains(t, cookies, "refresh_token")
	assert.True(t, cookies["access_token"].HttpOnly)
	assert.True(t, cookies["refresh_token"].HttpOnly)
}

// TestLogin_BadPassword - неизвестный email и неверный пароль
// дают один и тот же ответ
func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, user := helpers.RegisterAndLoginClient(t, ts)

	wrongRes, wrongBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-pass1",
	})
	ghostRes, ghostBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    fmt.Sprintf("ghost_%s@test.com", helpers.UniqueSuffix()),
		"password": "whatever1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, ghostRes.StatusCode)
	assert.Contains(t, wrongBody, "Invalid email or password")
	assert.Contains(t, ghostBody, "Invalid email or password")
}

// TestMe - защищенный маршрут работает и с Bearer-заголовком,
// и с access_token cookie
func TestMe(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token, user := helpers.RegisterAndLoginClient(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, user.Email)
	assert.Contains(t, body, user.Username)

	cookieRes, cookieBody := ts.SendRequestWithCookies(t, http.MethodGet, "/api/v1/auth/me",
		[]*http.Cookie{{Name: "access_token", Value: token}}, nil)
	assert.Equal(t, http.StatusOK, cookieRes.StatusCode)
	assert.Contains(t, cookieBody, user.Email)
}

func TestMe_NoToken(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Authentication required")
}

// TestRefresh - новый access токен по refresh cookie; access токен
// в той же cookie не принимается
func TestRefresh(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, user := helpers.RegisterAndLoginClient(t, ts)

	loginRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, loginRes.StatusCode)

	var refreshCookie, accessCookie *http.Cookie
	for _, c := range loginRes.Cookies() {
		switch c.Name {
		case "refresh_token":
			refreshCookie = c
		case "access_token":
			accessCookie = c
		}
	}
	require.NotNil(t, refreshCookie)
	require.NotNil(t, accessCookie)

	// Успешный refresh
	res, body := ts.SendRequestWithCookies(t, http.MethodPost, "/api/v1/auth/refresh",
		[]*http.Cookie{refreshCookie}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &refreshed))
	require.NotEmpty(t, refreshed.AccessToken)

	meRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", refreshed.AccessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)

	// Access токен, подсунутый как refresh, отклоняется
	badRes, _ := ts.SendRequestWithCookies(t, http.MethodPost, "/api/v1/auth/refresh",
		[]*http.Cookie{{Name: "refresh_token", Value: accessCookie.Value}}, nil)
	assert.Equal(t, http.StatusUnauthorized, badRes.StatusCode)
}

func TestRefresh_NoCookie(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Refresh token missing")
}

// TestLogout - обе cookie гасятся
func TestLogout(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	cleared := map[string]bool{}
	for _, c := range res.Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	assert.True(t, cleared["access_token"])
	assert.True(t, cleared["refresh_token"])
}
