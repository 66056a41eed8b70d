package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pptgenie-backend/internal/domains/user/repository"
	"pptgenie-backend/internal/domains/user/service"
	infracache "pptgenie-backend/internal/infrastructure/cache"
	"pptgenie-backend/internal/shared/middleware"
	"pptgenie-backend/pkg/jwt"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	svc := service.NewUserService(
		repository.NewMemoryRepository(),
		manager,
		infracache.NewMemoryCache(),
	)
	h := NewUserHandler(svc)

	router := gin.New()
	router.Use(middleware.ClientIPMiddleware())

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	users := router.Group("/api/v1/users")
	users.Use(middleware.AuthMiddleware(manager))
	{
		users.GET("/me", h.Me)
	}

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerBody() gin.H {
	return gin.H{
		"email":     "jamie@example.com",
		"password":  "s3cret-password",
		"full_name": "Jamie Doe",
	}
}

func TestRegister_Created(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope["success"])

	u := envelope["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "jamie@example.com", u["email"])
	assert.NotContains(t, u, "password_hash")
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	router := newTestRouter()

	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", registerBody()).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/api/v1/auth/register", registerBody()).Code)
}

func TestRegister_InvalidBodyIsBadRequest(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/auth/register", gin.H{
		"email":     "not-an-email",
		"password":  "s3cret-password",
		"full_name": "Jamie Doe",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_ReturnsTokens(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", registerBody()).Code)

	w := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email":    "jamie@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", registerBody()).Code)

	w := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email":    "jamie@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ThrottledIs429(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", registerBody()).Code)

	bad := gin.H{"email": "jamie@example.com", "password": "wrong-password"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusUnauthorized, postJSON(t, router, "/api/v1/auth/login", bad).Code)
	}

	w := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email":    "jamie@example.com",
		"password": "s3cret-password",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMe_RequiresAuth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_ReturnsProfile(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", registerBody()).Code)

	login := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email":    "jamie@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &envelope))
	token := envelope["data"].(map[string]interface{})["access_token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	u := envelope["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Jamie Doe", u["full_name"])
}
