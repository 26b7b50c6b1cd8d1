package dto

import "todomac/internal/domains/todo/model"

// CreateTodoRequest carries no creator field: the creator always comes from the caller's token.
type CreateTodoRequest struct {
	Title  *string       `json:"title"  validate:"omitempty,max=255"`
	Status *model.Status `json:"status" validate:"omitempty,oneof=open close"`
}

func (c *CreateTodoRequest) ToPatch() model.TodoPatch {
	return model.TodoPatch{
		Title:  c.Title,
		Status: c.Status,
	}
}

type UpdateTodoRequest struct {
	Title  *string       `json:"title"  validate:"omitempty,max=255"`
	Status *model.Status `json:"status" validate:"omitempty,oneof=open close"`
}

func (u *UpdateTodoRequest) ToPatch() model.TodoPatch {
	return model.TodoPatch{
		Title:  u.Title,
		Status: u.Status,
	}
}

type TodoResponse struct {
	ID     int64        `json:"id"`
	CID    int64        `json:"cid"`
	Title  string       `json:"title"`
	Status model.Status `json:"status"`
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID
	r.CID = todo.CID
	r.Title = todo.Title
	r.Status = todo.Status
}

type GetTodosResponse struct {
	Todos     []TodoResponse `json:"todos"`
	TotalData int            `json:"total_data"`
}

func (r *GetTodosResponse) FromModels(todos []model.Todo) {
	r.TotalData = len(todos)

	r.Todos = make([]TodoResponse, len(todos))
	for i, todo := range todos {
		r.Todos[i].FromModel(todo)
	}
}
