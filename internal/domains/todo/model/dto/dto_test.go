package dto_test

import (
	"encoding/json"
	"testing"

	"todomac/internal/domains/todo/model"
	"todomac/internal/domains/todo/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequest_ToPatch(t *testing.T) {
	var req dto.CreateTodoRequest

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Test Todo","status":"close","cid":999}`), &req))

	patch := req.ToPatch()

	require.NotNil(t, patch.Title)
	require.NotNil(t, patch.Status)
	assert.Equal(t, "Test Todo", *patch.Title)
	assert.Equal(t, model.StatusClose, *patch.Status)
	assert.Len(t, patch.Fields(), 2)
}

func TestUpdateTodoRequest_ToPatch_Absent(t *testing.T) {
	var req dto.UpdateTodoRequest

	require.NoError(t, json.Unmarshal([]byte(`{"status":"open"}`), &req))

	patch := req.ToPatch()

	assert.Nil(t, patch.Title)
	require.NotNil(t, patch.Status)
	assert.Equal(t, model.StatusOpen, *patch.Status)
}

func TestUpdateTodoRequest_InvalidStatus(t *testing.T) {
	var req dto.UpdateTodoRequest

	err := json.Unmarshal([]byte(`{"status":"done"}`), &req)

	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestTodoResponse_FromModel(t *testing.T) {
	var response dto.TodoResponse
	response.FromModel(model.Todo{ID: 100, CID: 123, Title: "todo 100", Status: model.StatusClose})

	assert.Equal(t, dto.TodoResponse{ID: 100, CID: 123, Title: "todo 100", Status: model.StatusClose}, response)
}

func TestGetTodosResponse_FromModels(t *testing.T) {
	var response dto.GetTodosResponse
	response.FromModels([]model.Todo{
		{ID: 101, CID: 123, Title: "todo 101", Status: model.StatusOpen},
		{ID: 100, CID: 123, Title: "todo 100", Status: model.StatusClose},
	})

	assert.Equal(t, 2, response.TotalData)
	assert.Equal(t, int64(101), response.Todos[0].ID)
	assert.Equal(t, int64(100), response.Todos[1].ID)

	response.FromModels(nil)

	assert.NotNil(t, response.Todos)
	assert.Empty(t, response.Todos)
}
