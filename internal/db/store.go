package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-pg/pg/v10"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

var (
	ErrNoRows              = errors.New("no rows affected")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// Store is the entity store shared by all requests. It is backed either by PostgreSQL
// or by an in-memory engine with the same constraints.
type Store struct {
	db  pg.DBI
	mem *memory
	log *slog.Logger
}

func New(db pg.DBI, logger *slog.Logger) *Store {
	return &Store{
		db:  db,
		log: logger,
	}
}

// NewInMemory returns a store that keeps all rows in process memory.
func NewInMemory(logger *slog.Logger) *Store {
	return &Store{
		mem: newMemory(),
		log: logger,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if db, ok := s.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (s *Store) Close() error {
	if db, ok := s.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Begin starts a new unit of work. A unit of work is not safe for concurrent use;
// each request is expected to begin its own.
func (s *Store) Begin() *UnitOfWork {
	return &UnitOfWork{store: s}
}

type mutationKind int

const (
	mutationInsert mutationKind = iota + 1
	mutationUpdate
	mutationDelete
	mutationIncrement
)

func (k mutationKind) String() string {
	switch k {
	case mutationInsert:
		return "insert"
	case mutationUpdate:
		return "update"
	case mutationDelete:
		return "delete"
	case mutationIncrement:
		return "increment"
	}
	return "unknown"
}

type mutation struct {
	kind    mutationKind
	entity  Entity
	columns []string
}

// UnitOfWork collects staged mutations from any number of repositories and commits
// them together in SaveChanges.
type UnitOfWork struct {
	store  *Store
	staged []mutation
}

func (u *UnitOfWork) stage(m mutation) {
	u.staged = append(u.staged, m)
}

// Pending returns the number of staged mutations.
func (u *UnitOfWork) Pending() int {
	return len(u.staged)
}

// Discard drops all staged mutations.
func (u *UnitOfWork) Discard() {
	u.staged = nil
}

// SaveChanges commits all staged mutations atomically. On success inserted entities
// have their primary keys set. Constraint failures are reported as ErrUniqueViolation,
// ErrForeignKeyViolation or ErrNoRows.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	if len(u.staged) == 0 {
		return nil
	}

	staged := u.staged
	u.staged = nil

	var err error
	if u.store.mem != nil {
		err = u.store.mem.commit(staged)
	} else {
		err = u.store.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			for _, m := range staged {
				if err := execMutation(ctx, tx, m); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err != nil {
		return fmt.Errorf("save changes: %w", err)
	}

	return nil
}

func execMutation(ctx context.Context, tx *pg.Tx, m mutation) error {
	q := tx.ModelContext(ctx, m.entity)

	var (
		res pg.Result
		err error
	)
	switch m.kind {
	case mutationInsert:
		_, err = q.Insert()
		return mapError(m, err)
	case mutationUpdate:
		if len(m.columns) > 0 {
			q = q.Column(m.columns...)
		}
		res, err = q.WherePK().Update()
	case mutationDelete:
		res, err = q.WherePK().Delete()
	case mutationIncrement:
		column := pg.Ident(m.columns[0])
		res, err = q.Set("? = ? + 1", column, column).
			WherePK().
			Returning("?", column).
			Update()
	default:
		return fmt.Errorf("unknown mutation %d", m.kind)
	}

	if err != nil {
		return mapError(m, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%s %s id=%d: %w", m.kind, m.entity.Table(), m.entity.PK(), ErrNoRows)
	}

	return nil
}

// mapError converts PostgreSQL integrity errors into the store errors.
func mapError(m mutation, err error) error {
	if err == nil {
		return nil
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case sqlStateUniqueViolation:
			return fmt.Errorf("%s %s: %w: %s", m.kind, m.entity.Table(), ErrUniqueViolation, pgErr.Field('n'))
		case sqlStateForeignKeyViolation:
			return fmt.Errorf("%s %s: %w: %s", m.kind, m.entity.Table(), ErrForeignKeyViolation, pgErr.Field('n'))
		}
	}

	return fmt.Errorf("%s %s: %w", m.kind, m.entity.Table(), err)
}
