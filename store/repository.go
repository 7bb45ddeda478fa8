package store

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Resource is a content repository: the slice of the generic repository
// the controllers consume, plus listing and deletion so the public
// catalog and the admin mutations share one handle.
type Resource[T any] interface {
	Create(ctx context.Context, record T, criteria ...repository.InsertCriteria) (T, error)
	CreateTx(ctx context.Context, tx bun.IDB, record T, criteria ...repository.InsertCriteria) (T, error)
	GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (T, error)
	Update(ctx context.Context, record T, criteria ...repository.UpdateCriteria) (T, error)

	List(ctx context.Context) ([]T, error)
	ListTx(ctx context.Context, tx bun.IDB) ([]T, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error
}

type resource[T any] struct {
	repository.Repository[T]
	db       *bun.DB
	handlers repository.ModelHandlers[T]
}

func NewResource[T any](db *bun.DB, handlers repository.ModelHandlers[T]) Resource[T] {
	return &resource[T]{
		Repository: repository.NewRepository(db, handlers),
		db:         db,
		handlers:   handlers,
	}
}

func (r *resource[T]) Create(ctx context.Context, record T, criteria ...repository.InsertCriteria) (T, error) {
	return r.CreateTx(ctx, r.db, record, criteria...)
}

func (r *resource[T]) CreateTx(ctx context.Context, tx bun.IDB, record T, criteria ...repository.InsertCriteria) (T, error) {
	if r.handlers.GetID(record) == uuid.Nil {
		r.handlers.SetID(record, uuid.New())
	}
	return r.Repository.CreateTx(ctx, tx, record, criteria...)
}

func (r *resource[T]) List(ctx context.Context) ([]T, error) {
	return r.ListTx(ctx, r.db)
}

func (r *resource[T]) ListTx(ctx context.Context, tx bun.IDB) ([]T, error) {
	records := []T{}
	err := tx.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *resource[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.DeleteByIDTx(ctx, r.db, id)
}

func (r *resource[T]) DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	record := r.handlers.NewRecord()
	res, err := tx.NewDelete().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id.String()})
	}

	return nil
}

func uuidHandlers[T any](newRecord func() T, getID func(T) uuid.UUID, setID func(T, uuid.UUID)) repository.ModelHandlers[T] {
	return repository.ModelHandlers[T]{
		NewRecord: newRecord,
		GetID:     getID,
		SetID:     setID,
	}
}
