package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todomac/infras/otel/mocks"
	todoMocks "todomac/internal/domains/todo/mocks"
	"todomac/internal/domains/todo/model"
	"todomac/internal/domains/todo/model/dto"
	"todomac/internal/domains/todo/service"
	"todomac/shared/failure"
	gRepo "todomac/shared/repository"
	"todomac/shared/security"
)

var utx = security.UserCtx{UserID: 123}

func ptr[T any](v T) *T {
	return &v
}

func userContext() context.Context {
	return security.WithUserCtx(context.Background(), utx)
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func()
		want      dto.TodoResponse
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateTodoRequest{Title: ptr("Test Todo"), Status: ptr(model.StatusOpen)},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), utx, model.TodoPatch{Title: ptr("Test Todo"), Status: ptr(model.StatusOpen)}).
					Return(model.Todo{ID: 1000, CID: 123, Title: "Test Todo", Status: model.StatusOpen}, nil)
			},
			want: dto.TodoResponse{ID: 1000, CID: 123, Title: "Test Todo", Status: model.StatusOpen},
		},
		{
			name: "repository error",
			req:  dto.CreateTodoRequest{Title: ptr("Test Todo")},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), utx, gomock.Any()).
					Return(model.Todo{}, &gRepo.StoreError{Op: "insert", Entity: "todo", Err: errors.New("database error")})
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(userContext(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestTodoService_MissingUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(todoMocks.NewMockTodo(ctrl), mocks.NewOtel())

	_, err := svc.Create(context.Background(), dto.CreateTodoRequest{})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	_, err = svc.GetAll(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	_, err = svc.Delete(context.Background(), 100)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestTodoService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		List(gomock.Any(), utx).
		Return([]model.Todo{
			{ID: 101, CID: 123, Title: "todo 101", Status: model.StatusOpen},
			{ID: 100, CID: 123, Title: "todo 100", Status: model.StatusClose},
		}, nil)

	res, err := svc.GetAll(userContext())

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, int64(101), res.Todos[0].ID)

	mockRepo.EXPECT().List(gomock.Any(), utx).Return(nil, errors.New("connection refused"))

	_, err = svc.GetAll(userContext())
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()
	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantCode  int
		wantMsg   string
	}{
		{
			name: "found",
			id:   100,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), utx, int64(100)).
					Return(model.Todo{ID: 100, CID: 123, Title: "todo 100", Status: model.StatusClose}, nil)
			},
		},
		{
			name: "not found",
			id:   93,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), utx, int64(93)).
					Return(model.Todo{}, &gRepo.EntityNotFoundError{Entity: "todo", ID: "93"})
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "entity not found: todo - 93",
		},
		{
			name: "invalid status in store",
			id:   100,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), utx, int64(100)).
					Return(model.Todo{}, &gRepo.StoreError{Op: "get", Entity: "todo", Err: model.ErrInvalidStatus})
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(userContext(), tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}

	span, ok := mockOtel.Span("service.Get")
	require.True(t, ok)
	assert.True(t, span.Ended)
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("empty request", func(t *testing.T) {
		_, err := svc.Update(userContext(), dto.UpdateTodoRequest{}, 100)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("updates title", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), utx, model.TodoPatch{Title: ptr("todo 100 - updated")}, int64(100)).
			Return(model.Todo{ID: 100, CID: 123, Title: "todo 100 - updated", Status: model.StatusClose}, nil)

		res, err := svc.Update(userContext(), dto.UpdateTodoRequest{Title: ptr("todo 100 - updated")}, 100)

		require.NoError(t, err)
		assert.Equal(t, "todo 100 - updated", res.Title)
		assert.Equal(t, model.StatusClose, res.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), utx, gomock.Any(), int64(93)).
			Return(model.Todo{}, &gRepo.EntityNotFoundError{Entity: "todo", ID: "93"})

		_, err := svc.Update(userContext(), dto.UpdateTodoRequest{Status: ptr(model.StatusOpen)}, 93)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		Delete(gomock.Any(), utx, int64(1000)).
		Return(model.Todo{ID: 1000, CID: 123, Title: "New title data...", Status: model.StatusOpen}, nil)

	res, err := svc.Delete(userContext(), 1000)

	require.NoError(t, err)
	assert.Equal(t, model.StatusOpen, res.Status)

	mockRepo.EXPECT().
		Delete(gomock.Any(), utx, int64(1000)).
		Return(model.Todo{}, &gRepo.EntityNotFoundError{Entity: "todo", ID: "1000"})

	_, err = svc.Delete(userContext(), 1000)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
