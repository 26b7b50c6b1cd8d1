package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"todomac/infras/otel"
	"todomac/infras/postgres"
	"todomac/internal/domains/todo/model"
	"todomac/shared/constant"
	gDto "todomac/shared/dto"
	gModel "todomac/shared/model"
	gRepo "todomac/shared/repository"
	"todomac/shared/security"
)

// Todo is the access controller for the todo table. Writes stamp the caller from the
// user context; every operation returns the projected row.
type Todo interface {
	Create(ctx context.Context, utx security.UserCtx, patch model.TodoPatch) (model.Todo, error)
	List(ctx context.Context, utx security.UserCtx) ([]model.Todo, error)
	Get(ctx context.Context, utx security.UserCtx, id int64) (model.Todo, error)
	Update(ctx context.Context, utx security.UserCtx, patch model.TodoPatch, id int64) (model.Todo, error)
	Delete(ctx context.Context, utx security.UserCtx, id int64) (model.Todo, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return NewWithProjection(db, otel, model.Projection())
}

func NewWithProjection(db *postgres.Connection, otel otel.Otel, projection gModel.Projection) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, projection, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) scope(ctx context.Context, method string, utx security.UserCtx) (context.Context, otel.Scope) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Todo."+method)
	scope.SetAttribute(constant.OtelUserIDAttributeKey, utx.UserID)

	return ctx, scope
}

func (r *repositoryImpl) Create(ctx context.Context, utx security.UserCtx, patch model.TodoPatch) (_ model.Todo, err error) {
	ctx, scope := r.scope(ctx, "Create", utx)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields := gModel.SetField(patch.Fields(), gModel.NewField(model.FieldCID, utx.UserID))

	return r.Insert(ctx, fields)
}

// List is not scoped to the caller; every user sees every todo, newest first.
func (r *repositoryImpl) List(ctx context.Context, utx security.UserCtx) (_ []model.Todo, err error) {
	ctx, scope := r.scope(ctx, "List", utx)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.GetAll(ctx, gDto.FilterGroup{}, gDto.SortDesc(model.FieldID))
}

func (r *repositoryImpl) Get(ctx context.Context, utx security.UserCtx, id int64) (_ model.Todo, err error) {
	ctx, scope := r.scope(ctx, "Get", utx)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.Repository.Get(ctx, id)
}

func (r *repositoryImpl) Update(ctx context.Context, utx security.UserCtx, patch model.TodoPatch, id int64) (_ model.Todo, err error) {
	ctx, scope := r.scope(ctx, "Update", utx)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields := patch.Fields()
	fields = gModel.SetField(fields, gModel.NewField(model.FieldMID, utx.UserID))
	fields = gModel.SetField(fields, gModel.RawField(model.FieldMTime, "now()"))

	return r.Repository.Update(ctx, fields, id)
}

func (r *repositoryImpl) Delete(ctx context.Context, utx security.UserCtx, id int64) (_ model.Todo, err error) {
	ctx, scope := r.scope(ctx, "Delete", utx)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.Repository.Delete(ctx, id)
}
