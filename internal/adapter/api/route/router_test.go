package route_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/controller"
	"github.com/hugohenrick/central-brain/internal/adapter/api/dto"
	"github.com/hugohenrick/central-brain/internal/adapter/api/route"
	"github.com/hugohenrick/central-brain/internal/adapter/repository"
	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
	"github.com/hugohenrick/central-brain/pkg/logger"
	"github.com/hugohenrick/central-brain/pkg/responder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, connect bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNopLogger()
	uri := "sqlite://" + filepath.Join(t.TempDir(), "chat.db")

	conn := database.NewConnector(uri, database.DialSQLite, log)
	conn.OnConnect(func(ctx context.Context, client *database.SQLiteClient) error {
		return database.RunMigrations(ctx, client.URI(), log)
	})
	t.Cleanup(func() { _ = conn.Close(context.Background()) })
	if connect {
		require.NoError(t, conn.Connect(context.Background()))
	}

	service := chat.NewService(repository.NewSQLiteChatRepository(conn), responder.New())

	return route.NewRouter(route.RouterConfig{
		ChatController:   controller.NewChatController(service, log),
		HealthController: controller.NewHealthController(conn, "test"),
		Logger:           log,
		CORSOrigins:      []string{"*"},
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConversationRoundTrip(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(r, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"I understand your message: hello. How can I help you further?"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/chat", "")
	require.Equal(t, http.StatusOK, w.Code)

	var history []dto.ChatEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Text)
	assert.True(t, history[0].IsUser)
	assert.Equal(t, "I understand your message: hello. How can I help you further?", history[1].Text)
	assert.True(t, history[1].IsAI)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "connected", health.Services.Database)
}

func TestEmptyMessageRoundTrip(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(r, http.MethodPost, "/api/chat", `{"message":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"I understand your message: . How can I help you further?"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/chat", "")
	require.Equal(t, http.StatusOK, w.Code)

	var history []dto.ChatEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "", history[0].Text)
	assert.True(t, history[0].IsUser)
	assert.Equal(t, "I understand your message: . How can I help you further?", history[1].Text)
	assert.True(t, history[1].IsAI)
}

func TestMissingMessageRejected(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(r, http.MethodPost, "/api/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/chat", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStoreDown(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(r, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to process message"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/chat", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to get chat history"}`, w.Body.String())

	w = do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "disconnected", health.Services.Database)
}

func TestRootAndUnknownRoutes(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Central Brain API is running")

	w = do(r, http.MethodGet, "/nada", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerUI(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/chat")
}

func TestPreflight(t *testing.T) {
	r := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
