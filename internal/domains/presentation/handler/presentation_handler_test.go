package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pptgenie-backend/internal/domains/presentation/generator"
	"pptgenie-backend/internal/domains/presentation/repository"
	"pptgenie-backend/internal/domains/presentation/service"
	infracache "pptgenie-backend/internal/infrastructure/cache"
	"pptgenie-backend/internal/shared/middleware"
	"pptgenie-backend/pkg/jwt"
)

type testEnv struct {
	router  *gin.Engine
	manager *jwt.Manager
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	svc := service.NewPresentationService(
		repository.NewMemoryRepository(),
		generator.NewTemplateGenerator(),
		infracache.NewMemoryCache(),
	)
	h := NewPresentationHandler(svc)
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	router := gin.New()
	group := router.Group("/api/v1/presentations")
	group.Use(middleware.AuthMiddleware(manager))
	{
		group.POST("", h.Generate)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}

	return &testEnv{router: router, manager: manager}
}

func (e *testEnv) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := e.manager.GenerateAccessToken(userID.String(), "user@example.com")
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func (e *testEnv) createPresentation(t *testing.T, token string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/v1/presentations", token, gin.H{
		"title":  "Kickoff",
		"prompt": "Introduce the project",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	envelope := decode(t, w)
	data := envelope["data"].(map[string]interface{})
	return data["id"].(string)
}

// =====================================================
// AUTHENTICATION
// =====================================================

func TestRoutes_RequireAuthentication(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/presentations"},
		{http.MethodGet, "/api/v1/presentations"},
		{http.MethodGet, "/api/v1/presentations/" + uuid.NewString()},
		{http.MethodPatch, "/api/v1/presentations/" + uuid.NewString()},
		{http.MethodDelete, "/api/v1/presentations/" + uuid.NewString()},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := env.do(t, tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			envelope := decode(t, w)
			assert.Equal(t, false, envelope["success"])
		})
	}
}

func TestRoutes_RejectMalformedToken(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/v1/presentations", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================
// CREATE
// =====================================================

func TestGenerate_ReturnsIDAndMessage(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())

	w := env.do(t, http.MethodPost, "/api/v1/presentations", token, gin.H{
		"title":  "Kickoff",
		"prompt": "Introduce the project",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	envelope := decode(t, w)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Presentation generated successfully", data["message"])

	_, err := uuid.Parse(data["id"].(string))
	assert.NoError(t, err)
}

func TestGenerate_RejectsMissingFields(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())

	w := env.do(t, http.MethodPost, "/api/v1/presentations", token, gin.H{
		"title": "No prompt here",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================
// READ
// =====================================================

func TestList_ReturnsSummaries(t *testing.T) {
	env := newTestEnv()
	owner := uuid.New()
	token := env.token(t, owner)

	env.createPresentation(t, token)
	env.createPresentation(t, token)

	w := env.do(t, http.MethodGet, "/api/v1/presentations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decode(t, w)
	data := envelope["data"].(map[string]interface{})
	presentations := data["presentations"].([]interface{})
	assert.Len(t, presentations, 2)

	entry := presentations[0].(map[string]interface{})
	assert.Contains(t, entry, "id")
	assert.Contains(t, entry, "title")
	assert.Contains(t, entry, "updatedAt")
	assert.NotContains(t, entry, "slides")
}

func TestGet_ReturnsFullPresentation(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())
	id := env.createPresentation(t, token)

	w := env.do(t, http.MethodGet, "/api/v1/presentations/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decode(t, w)
	data := envelope["data"].(map[string]interface{})
	p := data["presentation"].(map[string]interface{})

	assert.Equal(t, id, p["id"])
	assert.Equal(t, "Kickoff", p["title"])
	assert.Equal(t, "Introduce the project", p["prompt"])
	assert.Len(t, p["slides"].([]interface{}), 3)
}

func TestGet_ForeignRecordIs404(t *testing.T) {
	env := newTestEnv()
	ownerToken := env.token(t, uuid.New())
	strangerToken := env.token(t, uuid.New())

	id := env.createPresentation(t, ownerToken)

	w := env.do(t, http.MethodGet, "/api/v1/presentations/"+id, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet_UnparseableIDIs404(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())

	w := env.do(t, http.MethodGet, "/api/v1/presentations/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdate_PatchesTitle(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())
	id := env.createPresentation(t, token)

	w := env.do(t, http.MethodPatch, "/api/v1/presentations/"+id, token, gin.H{
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decode(t, w)
	data := envelope["data"].(map[string]interface{})
	p := data["presentation"].(map[string]interface{})

	assert.Equal(t, "Renamed", p["title"])
	assert.Len(t, p["slides"].([]interface{}), 3)
}

func TestUpdate_RejectsInvalidDeck(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())
	id := env.createPresentation(t, token)

	w := env.do(t, http.MethodPatch, "/api/v1/presentations/"+id, token, gin.H{
		"slides": []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate_ForeignRecordIs404(t *testing.T) {
	env := newTestEnv()
	ownerToken := env.token(t, uuid.New())
	strangerToken := env.token(t, uuid.New())

	id := env.createPresentation(t, ownerToken)

	w := env.do(t, http.MethodPatch, "/api/v1/presentations/"+id, strangerToken, gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================
// DELETE
// =====================================================

func TestDelete_ThenGetIs404(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())
	id := env.createPresentation(t, token)

	w := env.do(t, http.MethodDelete, "/api/v1/presentations/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decode(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Presentation deleted successfully", data["message"])

	w = env.do(t, http.MethodGet, "/api/v1/presentations/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_UnknownIDIs404(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, uuid.New())

	path := fmt.Sprintf("/api/v1/presentations/%s", uuid.NewString())
	w := env.do(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
