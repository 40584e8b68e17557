package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/daniilsolovey/news-website/internal/db"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	MaxTitleLength = 255
)

type NewsManager struct {
	store *db.Store
	log   *slog.Logger
	now   func() time.Time
}

func NewNewsManager(store *db.Store, logger *slog.Logger) *NewsManager {
	return &NewsManager{
		store: store,
		log:   logger,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// AddNews publishes news authored by the actor. Date, views and author are always set server-side.
func (m *NewsManager) AddNews(ctx context.Context, actor Actor, n News) (*News, error) {
	if actor.Anonymous() {
		return nil, ErrUnauthenticated
	} else if !actor.Role.CanPublish() {
		return nil, fmt.Errorf("%w: role %s cannot publish news", ErrForbidden, actor.Role)
	}

	if err := validateNews(n); err != nil {
		return nil, err
	}

	uow := m.store.Begin()
	if err := m.ensureCategory(ctx, uow, n.CategoryID); err != nil {
		return nil, err
	}

	item := &db.News{
		Title:       strings.TrimSpace(n.Title),
		Description: n.Description,
		Date:        m.now(),
		Views:       0,
		CategoryID:  n.CategoryID,
		AuthorID:    actor.UserID,
	}

	db.NewsItems(uow).Add(item)
	if err := uow.SaveChanges(ctx); err != nil {
		return nil, commitError(err, "category or author does not exist")
	}

	m.log.InfoContext(ctx, "news added", "id", item.ID, "author", actor.Username)

	return m.newsByID(ctx, uow, item.ID)
}

// EditNews overwrites title, description and category of existing news. Only the author or an admin may edit.
func (m *NewsManager) EditNews(ctx context.Context, actor Actor, n News) (*News, error) {
	uow := m.store.Begin()
	item, err := m.modifiable(ctx, uow, actor, n.ID)
	if err != nil {
		return nil, err
	}

	if err := validateNews(n); err != nil {
		return nil, err
	}
	if n.CategoryID != item.CategoryID {
		if err := m.ensureCategory(ctx, uow, n.CategoryID); err != nil {
			return nil, err
		}
	}

	item.Title = strings.TrimSpace(n.Title)
	item.Description = n.Description
	item.CategoryID = n.CategoryID

	db.NewsItems(uow).Update(item, db.Columns.News.Title, db.Columns.News.Description, db.Columns.News.CategoryID)
	if err := uow.SaveChanges(ctx); err != nil {
		return nil, commitError(err, fmt.Sprintf("news %d", n.ID))
	}

	m.log.InfoContext(ctx, "news edited", "id", item.ID, "by", actor.Username)

	return m.newsByID(ctx, uow, item.ID)
}

// DeleteNews removes news. Only the author or an admin may delete.
func (m *NewsManager) DeleteNews(ctx context.Context, actor Actor, id int) error {
	uow := m.store.Begin()
	item, err := m.modifiable(ctx, uow, actor, id)
	if err != nil {
		return err
	}

	db.NewsItems(uow).Remove(item)
	if err := uow.SaveChanges(ctx); err != nil {
		return commitError(err, fmt.Sprintf("news %d", id))
	}

	m.log.InfoContext(ctx, "news deleted", "id", id, "by", actor.Username)

	return nil
}

// NewsByID returns news by id, or nil. Every successful read counts as a view and is persisted.
func (m *NewsManager) NewsByID(ctx context.Context, id int) (*News, error) {
	uow := m.store.Begin()
	repo := db.NewsItems(uow)

	item, err := repo.Get(ctx, id, db.Columns.News.Category, db.Columns.News.Author)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if item == nil {
		return nil, nil
	}

	repo.Increment(item, db.Columns.News.Views)
	if err := uow.SaveChanges(ctx); errors.Is(err, db.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, commitError(err, fmt.Sprintf("news %d", id))
	}

	news := NewNews(item)
	return &news, nil
}

// News returns every news item in storage order.
func (m *NewsManager) News(ctx context.Context) ([]News, error) {
	return m.list(ctx, m.selection())
}

func (m *NewsManager) NewsByCategory(ctx context.Context, categoryID int) ([]News, error) {
	return m.list(ctx, m.selection().Where(db.Columns.News.CategoryID, db.OpEq, categoryID))
}

// NewsSortedByDate returns one page of news ordered by date. Page and pageSize below 1 fall back
// to DefaultPage and DefaultPageSize; pageSize is capped at MaxPageSize.
func (m *NewsManager) NewsSortedByDate(ctx context.Context, desc bool, page, pageSize int) ([]News, error) {
	page, pageSize = NormalizePage(page, pageSize)

	return m.list(ctx, m.selection().
		OrderBy(db.Columns.News.Date, desc).
		OrderBy(db.Columns.News.ID, desc).
		Page(page, pageSize))
}

// PopularNews returns news with at least minViews views, most viewed first.
func (m *NewsManager) PopularNews(ctx context.Context, minViews int) ([]News, error) {
	return m.list(ctx, m.selection().
		Where(db.Columns.News.Views, db.OpGte, minViews).
		OrderBy(db.Columns.News.Views, true))
}

// NewsCount returns the number of news, optionally within one category.
func (m *NewsManager) NewsCount(ctx context.Context, categoryID *int) (int, error) {
	s := db.NewsItems(m.store.Begin()).All()
	if categoryID != nil {
		s = s.Where(db.Columns.News.CategoryID, db.OpEq, *categoryID)
	}

	count, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func (m *NewsManager) selection() db.Selection[db.News, *db.News] {
	return db.NewsItems(m.store.Begin()).All().With(db.Columns.News.Category, db.Columns.News.Author)
}

func (m *NewsManager) list(ctx context.Context, s db.Selection[db.News, *db.News]) ([]News, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return NewNewsList(list), nil
}

func (m *NewsManager) newsByID(ctx context.Context, uow *db.UnitOfWork, id int) (*News, error) {
	item, err := db.NewsItems(uow).Get(ctx, id, db.Columns.News.Category, db.Columns.News.Author)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if item == nil {
		return nil, fmt.Errorf("%w: news %d", ErrNotFound, id)
	}

	news := NewNews(item)
	return &news, nil
}

// modifiable loads news for a mutation. A missing row is reported before a forbidden actor.
func (m *NewsManager) modifiable(ctx context.Context, uow *db.UnitOfWork, actor Actor, id int) (*db.News, error) {
	if actor.Anonymous() {
		return nil, ErrUnauthenticated
	}

	item, err := db.NewsItems(uow).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if item == nil {
		return nil, fmt.Errorf("%w: news %d", ErrNotFound, id)
	}

	if !actor.CanModify(item.AuthorID) {
		return nil, fmt.Errorf("%w: news %d belongs to another author", ErrForbidden, id)
	}

	return item, nil
}

func (m *NewsManager) ensureCategory(ctx context.Context, uow *db.UnitOfWork, id int) error {
	category, err := db.Categories(uow).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("db get category by id: %w", err)
	} else if category == nil {
		return validationf("category %d does not exist", id)
	}
	return nil
}

func validateNews(n News) error {
	switch {
	case strings.TrimSpace(n.Title) == "":
		return validationf("title is required")
	case utf8.RuneCountInString(strings.TrimSpace(n.Title)) > MaxTitleLength:
		return validationf("title must be at most %d characters long", MaxTitleLength)
	case strings.TrimSpace(n.Description) == "":
		return validationf("description is required")
	case n.CategoryID <= 0:
		return validationf("category is required")
	}
	return nil
}
