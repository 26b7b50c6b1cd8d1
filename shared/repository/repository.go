package repository

import (
	"context"
	"fmt"
	"todomac/infras/otel"
	"todomac/infras/postgres"
	"todomac/shared/constant"
	"todomac/shared/dto"
	"todomac/shared/logger"
	"todomac/shared/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	opInsert = "insert"
	opGet    = "get"
	opGetAll = "get all"
	opUpdate = "update"
	opDelete = "delete"

	primaryKeyArg = "pk"
)

// Repository is the statement layer shared by entity access controllers. Every write
// returns the projection of the affected row; reads go to the read pool.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	entity        string
	primaryColumn string
	projection    model.Projection
}

func NewRepository[T any](entityName string, projection model.Projection, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		entity:        entityName,
		primaryColumn: primaryColumn,
		projection:    projection,
	}
}

func (repo *Repository[T]) Projection() model.Projection {
	return repo.projection
}

func (repo *Repository[T]) FilterByKey(key any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				ArgName:  primaryKeyArg,
				Field:    repo.primaryColumn,
				Value:    key,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

func (repo *Repository[T]) reader() *sqlx.DB {
	if repo.db == nil {
		return nil
	}

	return repo.db.Read
}

func (repo *Repository[T]) writer() *sqlx.DB {
	if repo.db == nil {
		return nil
	}

	return repo.db.Write
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, method)
}

func (repo *Repository[T]) storeError(scope otel.Scope, op string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return &StoreError{Op: op, Entity: repo.entity, Err: err}
}

// fetchOne runs a statement expected to yield exactly one row.
func (repo *Repository[T]) fetchOne(ctx context.Context, scope otel.Scope, db *sqlx.DB, op, key, query string, args map[string]any) (T, error) {
	var row T

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if db == nil {
		return row, repo.storeError(scope, op, ErrStoreUnavailable)
	}

	bound, values, err := db.BindNamed(query, args)
	if err != nil {
		return row, repo.storeError(scope, op, err)
	}

	err = sqlx.GetContext(ctx, db, &row, bound, values...)

	row, err = FetchOneResult(row, err, op, repo.entity, key)
	if err != nil {
		if IsNotFound(err) {
			log.Debug().Str("entity", repo.entity).Str("id", key).Str("op", op).Msg("entity not found")
		} else {
			logger.ErrorWithStack(err)
		}

		scope.TraceError(err)

		return row, err
	}

	return row, nil
}

func (repo *Repository[T]) Insert(ctx context.Context, fields []model.Field) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	query, args := BuildInsert(repo.projection, fields)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var row T

	db := repo.writer()
	if db == nil {
		return row, repo.storeError(scope, opInsert, ErrStoreUnavailable)
	}

	bound, values, err := db.BindNamed(query, args)
	if err != nil {
		return row, repo.storeError(scope, opInsert, err)
	}

	if err = sqlx.GetContext(ctx, db, &row, bound, values...); err != nil {
		return row, repo.storeError(scope, opInsert, err)
	}

	return row, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup, sorts ...dto.Sort) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	query, args := BuildSelect(repo.projection, filter, sorts...)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []T{}

	db := repo.reader()
	if db == nil {
		return nil, repo.storeError(scope, opGetAll, ErrStoreUnavailable)
	}

	bound, values, err := db.BindNamed(query, args)
	if err != nil {
		return nil, repo.storeError(scope, opGetAll, err)
	}

	if err = sqlx.SelectContext(ctx, db, &rows, bound, values...); err != nil {
		return nil, repo.storeError(scope, opGetAll, err)
	}

	return rows, nil
}

func (repo *Repository[T]) Get(ctx context.Context, key any) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	query, args := BuildSelect(repo.projection, repo.FilterByKey(key))

	return repo.fetchOne(ctx, scope, repo.reader(), opGet, fmt.Sprint(key), query, args)
}

func (repo *Repository[T]) Update(ctx context.Context, fields []model.Field, key any) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	query, args, err := BuildUpdate(repo.projection, fields, repo.FilterByKey(key))
	if err != nil {
		var zero T

		return zero, repo.storeError(scope, opUpdate, err)
	}

	return repo.fetchOne(ctx, scope, repo.writer(), opUpdate, fmt.Sprint(key), query, args)
}

func (repo *Repository[T]) Delete(ctx context.Context, key any) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	query, args, err := BuildDelete(repo.projection, repo.FilterByKey(key))
	if err != nil {
		var zero T

		return zero, repo.storeError(scope, opDelete, err)
	}

	return repo.fetchOne(ctx, scope, repo.writer(), opDelete, fmt.Sprint(key), query, args)
}
