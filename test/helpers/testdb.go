package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"workhub_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// UniqueSuffix - уникальный хвост для username/email, чтобы тесты
// не пересекались между собой и между запусками
func UniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// RegisterAndLogin проводит пользователя через публичный API:
// регистрация, затем логин. Возвращает access токен и пользователя из БД.
func RegisterAndLogin(t *testing.T, ts *TestServer, role models.UserRole) (string, *models.User) {
	suffix := UniqueSuffix()
	email := fmt.Sprintf("%s_%s@test.com", role, suffix)
	password := "password1"

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": fmt.Sprintf("%s_%s", role, suffix),
		"name":     "Test " + string(role),
		"email":    email,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "registration failed: %s", regBody)

	logRes, logBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, logRes.StatusCode, "login failed: %s", logBody)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBody), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", email).Error)

	return loginResponse.AccessToken, &user
}

// RegisterAndLoginWorker - исполнитель; профиль создается при регистрации
func RegisterAndLoginWorker(t *testing.T, ts *TestServer) (string, *models.User, *models.WorkerProfile) {
	token, user := RegisterAndLogin(t, ts, models.UserRoleWorker)

	var profile models.WorkerProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error,
		"worker profile should be created during registration")

	return token, user, &profile
}

// RegisterAndLoginClient - заказчик, без профиля исполнителя
func RegisterAndLoginClient(t *testing.T, ts *TestServer) (string, *models.User) {
	return RegisterAndLogin(t, ts, models.UserRoleClient)
}

// CreateJob создает заявку через API от имени клиента и возвращает ее id
func CreateJob(t *testing.T, ts *TestServer, clientToken string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", clientToken, map[string]interface{}{
		"title":       "Paint the fence",
		"description": "Two coats, white",
		"price":       120.0,
		"location":    "Springfield, Main St 5",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation failed: %s", body)

	var created struct {
		Job models.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.Job.ID)

	return created.Job.ID
}

// Apply - отклик исполнителя на заявку через API, возвращает id отклика
func Apply(t *testing.T, ts *TestServer, workerToken, jobID string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", workerToken, map[string]interface{}{
		"job_id":       jobID,
		"cover_letter": "I have my own ladder",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "application failed: %s", body)

	var created struct {
		ApplicationID string `json:"application_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.ApplicationID)

	return created.ApplicationID
}
