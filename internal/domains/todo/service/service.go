package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"errors"
	"fmt"
	"todomac/infras/otel"
	"todomac/internal/domains/todo/model"
	"todomac/internal/domains/todo/model/dto"
	"todomac/internal/domains/todo/repository"
	"todomac/shared/constant"
	"todomac/shared/failure"
	gRepo "todomac/shared/repository"
	"todomac/shared/security"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) (dto.TodoResponse, error)
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func userCtx(ctx context.Context) (security.UserCtx, error) {
	utx, ok := security.FromContext(ctx)
	if !ok {
		return utx, failure.Unauthorized("missing user context") // nolint:wrapcheck
	}

	return utx, nil
}

// classify turns store errors into transport failures. Anything unrecognized stays a 500.
func classify(err error, action string) error {
	switch {
	case gRepo.IsNotFound(err):
		return failure.NotFound(err.Error()) // nolint:wrapcheck
	case errors.Is(err, model.ErrInvalidStatus):
		return failure.BadRequest(err) // nolint:wrapcheck
	default:
		return fmt.Errorf("failed to %s todo: %w", action, err)
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	utx, err := userCtx(ctx)
	if err != nil {
		return res, err
	}

	todo, err := s.repo.Create(ctx, utx, req.ToPatch())
	if err != nil {
		log.Error().Err(err).Int64("user_id", utx.UserID).Msg("failed to create todo")

		return res, classify(err, "create")
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	utx, err := userCtx(ctx)
	if err != nil {
		return res, err
	}

	todos, err := s.repo.List(ctx, utx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, classify(err, "list")
	}

	res.FromModels(todos)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	utx, err := userCtx(ctx)
	if err != nil {
		return res, err
	}

	todo, err := s.repo.Get(ctx, utx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return res, classify(err, "get")
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patch := req.ToPatch()
	if patch.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	utx, err := userCtx(ctx)
	if err != nil {
		return res, err
	}

	todo, err := s.repo.Update(ctx, utx, patch, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Int64("user_id", utx.UserID).Msg("failed to update todo")

		return res, classify(err, "update")
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	utx, err := userCtx(ctx)
	if err != nil {
		return res, err
	}

	todo, err := s.repo.Delete(ctx, utx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Int64("user_id", utx.UserID).Msg("failed to delete todo")

		return res, classify(err, "delete")
	}

	res.FromModel(todo)

	return res, nil
}
