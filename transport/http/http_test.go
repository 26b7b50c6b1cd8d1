package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"todomac/config"
	"todomac/infras/otel/mocks"
	todoMocks "todomac/internal/domains/todo/mocks"
	"todomac/internal/domains/todo/model"
	"todomac/internal/domains/todo/model/dto"
	"todomac/internal/handlers/todo"
	"todomac/shared/security"
	transport "todomac/transport/http"
	"todomac/transport/http/middleware"
	"todomac/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *todoMocks.MockTodoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := todoMocks.NewMockTodoService(ctrl)
	otl := mocks.NewOtel()
	cfg := &config.Config{}

	handlers := router.DomainHandlers{
		Todo: todo.New(svc, middleware.NewAuthMiddleware(security.NumericResolver{}, otl), otl),
	}

	return transport.New(cfg, router.New(handlers, middleware.NewAppMiddleware(otl, cfg, nil))), svc
}

func TestHealthSkipsAuth(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestTodoRoutesRequireToken(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/todos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTodoRoutes(t *testing.T) {
	server, svc := newServer(t)

	svc.EXPECT().Get(gomock.Any(), int64(101)).
		Return(dto.TodoResponse{ID: 101, CID: 123, Title: "todo 101", Status: model.StatusOpen}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/todos/101", nil)
	req.Header.Set("Authorization", "Bearer 123")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":101,"cid":123,"title":"todo 101","status":"open"}}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
