package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/daniilsolovey/news-website/internal/db"
)

const MaxCategoryNameLength = 255

type CategoryManager struct {
	store *db.Store
	log   *slog.Logger
}

func NewCategoryManager(store *db.Store, logger *slog.Logger) *CategoryManager {
	return &CategoryManager{
		store: store,
		log:   logger,
	}
}

// AddCategory creates a category. Only admins may add categories and names are unique (case-sensitive).
func (m *CategoryManager) AddCategory(ctx context.Context, actor Actor, c Category) (*Category, error) {
	if actor.Anonymous() {
		return nil, ErrUnauthenticated
	} else if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins can add categories", ErrForbidden)
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return nil, validationf("category name is required")
	} else if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return nil, validationf("category name must be at most %d characters long", MaxCategoryNameLength)
	}

	uow := m.store.Begin()
	repo := db.Categories(uow)

	existing, err := repo.Find(ctx, db.NewQuery().Where(db.Columns.Category.Name, db.OpEq, name))
	if err != nil {
		return nil, fmt.Errorf("db find category: %w", err)
	} else if existing != nil {
		return nil, validationf("category %q already exists", name)
	}

	item := &db.Category{Name: name}
	repo.Add(item)
	if err := uow.SaveChanges(ctx); err != nil {
		return nil, commitError(err, fmt.Sprintf("category %q already exists", name))
	}

	m.log.InfoContext(ctx, "category added", "id", item.ID, "name", item.Name, "by", actor.Username)

	category := NewCategory(item)
	return &category, nil
}

// Categories returns all categories ordered by id, each with its news.
func (m *CategoryManager) Categories(ctx context.Context) ([]Category, error) {
	list, err := db.Categories(m.store.Begin()).All().
		With(db.Columns.Category.News).
		OrderBy(db.Columns.Category.ID, false).
		List(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CategoryByID returns the category without its news, or nil.
func (m *CategoryManager) CategoryByID(ctx context.Context, id int) (*Category, error) {
	item, err := db.Categories(m.store.Begin()).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if item == nil {
		return nil, nil
	}

	category := NewCategory(item)
	return &category, nil
}
