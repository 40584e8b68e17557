package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Repository is the data access layer for one entity type. Reads go straight to the store;
// Add, Update and Remove are staged on the unit of work until SaveChanges.
type Repository[T any, PT entity[T]] struct {
	uow *UnitOfWork
}

func NewRepository[T any, PT entity[T]](uow *UnitOfWork) *Repository[T, PT] {
	return &Repository[T, PT]{uow: uow}
}

func Categories(uow *UnitOfWork) *Repository[Category, *Category] {
	return NewRepository[Category](uow)
}

func Users(uow *UnitOfWork) *Repository[User, *User] {
	return NewRepository[User](uow)
}

func NewsItems(uow *UnitOfWork) *Repository[News, *News] {
	return NewRepository[News](uow)
}

// Get returns the entity with the given id, or nil if it does not exist.
func (r *Repository[T, PT]) Get(ctx context.Context, id int, relations ...string) (*T, error) {
	if r.uow.store.mem != nil {
		rows, err := r.memSelect(NewQuery().Where("id", OpEq, id).With(relations...))
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		return &rows[0], nil
	}

	item := PT(new(T))
	item.SetPK(id)

	q := r.uow.store.db.ModelContext(ctx, item)
	for _, rel := range relations {
		q = q.Relation(rel)
	}

	err := q.WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", item.Table(), err)
	}

	return (*T)(item), nil
}

// All returns a lazily evaluated selection of every entity.
func (r *Repository[T, PT]) All() Selection[T, PT] {
	return Selection[T, PT]{repo: r}
}

// Find returns the first entity matching q, or nil.
func (r *Repository[T, PT]) Find(ctx context.Context, q Query) (*T, error) {
	return Selection[T, PT]{repo: r, q: q}.First(ctx)
}

// FindAll returns every entity matching q.
func (r *Repository[T, PT]) FindAll(ctx context.Context, q Query) ([]T, error) {
	return Selection[T, PT]{repo: r, q: q}.List(ctx)
}

func (r *Repository[T, PT]) Add(item *T) {
	r.uow.stage(mutation{kind: mutationInsert, entity: PT(item)})
}

// Update stages an update of item. When columns are given only those are written.
func (r *Repository[T, PT]) Update(item *T, columns ...string) {
	r.uow.stage(mutation{kind: mutationUpdate, entity: PT(item), columns: columns})
}

// Increment stages an atomic column = column + 1 on the stored row of item. After SaveChanges
// the column of item holds the incremented value.
func (r *Repository[T, PT]) Increment(item *T, column string) {
	r.uow.stage(mutation{kind: mutationIncrement, entity: PT(item), columns: []string{column}})
}

func (r *Repository[T, PT]) Remove(item *T) {
	r.uow.stage(mutation{kind: mutationDelete, entity: PT(item)})
}

// SaveChanges commits the unit of work the repository is bound to.
func (r *Repository[T, PT]) SaveChanges(ctx context.Context) error {
	return r.uow.SaveChanges(ctx)
}

func (r *Repository[T, PT]) table() string {
	return PT(new(T)).Table()
}

func (r *Repository[T, PT]) memSelect(q Query) ([]T, error) {
	rows, err := r.uow.store.mem.selectRows(r.table(), q)
	if err != nil {
		return nil, err
	}

	list := make([]T, len(rows))
	for i := range rows {
		list[i] = *(rows[i].(PT))
	}

	return list, nil
}

func (r *Repository[T, PT]) memCount(q Query) (int, error) {
	rows, err := r.uow.store.mem.selectRows(r.table(), q.unpaged())
	return len(rows), err
}

// Selection is a composable, not yet executed query over one entity type.
type Selection[T any, PT entity[T]] struct {
	repo *Repository[T, PT]
	q    Query
}

func (s Selection[T, PT]) Where(column string, op Op, value any) Selection[T, PT] {
	s.q = s.q.Where(column, op, value)
	return s
}

func (s Selection[T, PT]) OrderBy(column string, desc bool) Selection[T, PT] {
	s.q = s.q.OrderBy(column, desc)
	return s
}

func (s Selection[T, PT]) With(relations ...string) Selection[T, PT] {
	s.q = s.q.With(relations...)
	return s
}

func (s Selection[T, PT]) Page(page, pageSize int) Selection[T, PT] {
	s.q = s.q.Page(page, pageSize)
	return s
}

func (s Selection[T, PT]) Query() Query {
	return s.q
}

// List materializes the selection.
func (s Selection[T, PT]) List(ctx context.Context) ([]T, error) {
	if s.repo.uow.store.mem != nil {
		return s.repo.memSelect(s.q)
	}

	list := []T{}
	q, err := s.q.apply(s.repo.uow.store.db.ModelContext(ctx, &list))
	if err != nil {
		return nil, err
	}

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.repo.table(), err)
	}

	return list, nil
}

// First returns the first row of the selection, or nil.
func (s Selection[T, PT]) First(ctx context.Context) (*T, error) {
	list, err := Selection[T, PT]{repo: s.repo, q: s.q.Limit(1)}.List(ctx)
	if err != nil || len(list) == 0 {
		return nil, err
	}

	return &list[0], nil
}

// Count returns the number of rows matching the selection filters, ignoring paging.
func (s Selection[T, PT]) Count(ctx context.Context) (int, error) {
	if s.repo.uow.store.mem != nil {
		return s.repo.memCount(s.q)
	}

	q, err := Query{filters: s.q.filters}.apply(s.repo.uow.store.db.ModelContext(ctx, PT(new(T))))
	if err != nil {
		return 0, err
	}

	count, err := q.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.repo.table(), err)
	}

	return count, nil
}
