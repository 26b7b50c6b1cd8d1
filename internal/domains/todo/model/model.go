package model

import "todomac/shared/model"

const (
	TableName  = "todo"
	EntityName = "todo"

	FieldID     = "id"
	FieldCID    = "cid"
	FieldTitle  = "title"
	FieldStatus = "status"
	FieldMID    = "mid"
	FieldMTime  = "mtime"
)

// Todo is the projected row: every read and write returns exactly these columns.
type Todo struct {
	ID     int64  `db:"id"     json:"id"`
	CID    int64  `db:"cid"    json:"cid"`
	Title  string `db:"title"  json:"title"`
	Status Status `db:"status" json:"status"`
}

// TodoPatch holds the client-settable fields. A nil field is left out of the statement,
// so the column keeps its current value (update) or its default (create).
type TodoPatch struct {
	Title  *string
	Status *Status
}

func (p TodoPatch) Fields() []model.Field {
	fields := make([]model.Field, 0, 2)

	if p.Title != nil {
		fields = append(fields, model.NewField(FieldTitle, *p.Title))
	}

	if p.Status != nil {
		fields = append(fields, model.NewField(FieldStatus, *p.Status))
	}

	return fields
}

func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Status == nil
}

func Projection() model.Projection {
	return model.NewProjection(TableName, FieldID, FieldCID, FieldTitle, FieldStatus)
}
