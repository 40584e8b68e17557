//go:build integration

package db

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestRepositoryGet_Integration(t *testing.T) {
	ctx, store := withData(t)
	repo := NewsItems(store.Begin())

	t.Run("WithValidIDReturnsNewsWithRelations", func(t *testing.T) {
		news, err := repo.Get(ctx, 1, Columns.News.Category, Columns.News.Author)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if news == nil {
			t.Fatalf("expected news, got nil")
		}
		if news.Category == nil || news.Category.ID != news.CategoryID {
			t.Fatalf("category not loaded: %+v", news.Category)
		}
		if news.Author == nil || news.Author.ID != news.AuthorID {
			t.Fatalf("author not loaded: %+v", news.Author)
		}
	})

	t.Run("WithMissingIDReturnsNil", func(t *testing.T) {
		news, err := repo.Get(ctx, 99999)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if news != nil {
			t.Fatalf("expected nil news, got %+v", news)
		}
	})
}

func TestSelection_Integration(t *testing.T) {
	ctx, store := withData(t)
	repo := NewsItems(store.Begin())

	t.Run("OrdersByDateDescWithPaging", func(t *testing.T) {
		page1, err := repo.All().OrderBy(Columns.News.Date, true).Page(1, 2).List(ctx)
		if err != nil {
			t.Fatalf("List page1: %v", err)
		}
		page2, err := repo.All().OrderBy(Columns.News.Date, true).Page(2, 2).List(ctx)
		if err != nil {
			t.Fatalf("List page2: %v", err)
		}
		if len(page1) != 2 || len(page2) != 2 {
			t.Fatalf("expected 2+2 items, got %d+%d", len(page1), len(page2))
		}
		all := append(page1, page2...)
		for i := 0; i < len(all)-1; i++ {
			if all[i].Date.Before(all[i+1].Date) {
				t.Fatalf("news not sorted by date desc at %d", i)
			}
		}
	})

	t.Run("FiltersByViews", func(t *testing.T) {
		news, err := repo.All().Where(Columns.News.Views, OpGte, 100).OrderBy(Columns.News.Views, true).List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		want := []int{500, 150, 100}
		if len(news) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(news))
		}
		for i := range want {
			if news[i].Views != want[i] {
				t.Fatalf("item %d: expected views %d, got %d", i, want[i], news[i].Views)
			}
		}
	})

	t.Run("CountIgnoresPaging", func(t *testing.T) {
		count, err := repo.All().Where(Columns.News.CategoryID, OpEq, 1).Page(1, 1).Count(ctx)
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if count != 2 {
			t.Fatalf("expected 2, got %d", count)
		}
	})

	t.Run("LoadsHasManyRelation", func(t *testing.T) {
		categories, err := Categories(store.Begin()).All().With(Columns.Category.News).OrderBy(Columns.Category.ID, false).List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		if len(categories[0].News) != 2 {
			t.Fatalf("expected 2 news in first category, got %d", len(categories[0].News))
		}
	})
}

func TestUnitOfWork_Integration(t *testing.T) {
	t.Run("CommitsStagedInsertAndAssignsID", func(t *testing.T) {
		ctx, store := withData(t)
		uow := store.Begin()
		repo := NewsItems(uow)

		item := &News{Title: "New", Description: "Body", Date: time.Now(), CategoryID: 1, AuthorID: 1}
		repo.Add(item)
		if err := uow.SaveChanges(ctx); err != nil {
			t.Fatalf("SaveChanges: %v", err)
		}
		if item.ID == 0 {
			t.Fatalf("ID was not set after insert")
		}
	})

	t.Run("UniqueViolationIsMapped", func(t *testing.T) {
		ctx, store := withData(t)
		uow := store.Begin()
		Categories(uow).Add(&Category{Name: "Technology"})

		err := uow.SaveChanges(ctx)
		if !errors.Is(err, ErrUniqueViolation) {
			t.Fatalf("expected ErrUniqueViolation, got %v", err)
		}
	})

	t.Run("ForeignKeyViolationIsMapped", func(t *testing.T) {
		ctx, store := withData(t)
		uow := store.Begin()
		NewsItems(uow).Add(&News{Title: "Orphan", Description: "x", Date: time.Now(), CategoryID: 999, AuthorID: 1})

		err := uow.SaveChanges(ctx)
		if !errors.Is(err, ErrForeignKeyViolation) {
			t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
		}
	})

	t.Run("FailedCommitRollsBackEarlierMutations", func(t *testing.T) {
		ctx, store := withData(t)
		uow := store.Begin()
		Categories(uow).Add(&Category{Name: "Culture"})
		Categories(uow).Add(&Category{Name: "Sports"})

		if err := uow.SaveChanges(ctx); !errors.Is(err, ErrUniqueViolation) {
			t.Fatalf("expected ErrUniqueViolation, got %v", err)
		}

		found, err := Categories(store.Begin()).Find(ctx, NewQuery().Where(Columns.Category.Name, OpEq, "Culture"))
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if found != nil {
			t.Fatalf("category from failed unit of work was persisted")
		}
	})

	t.Run("UpdateSelectedColumns", func(t *testing.T) {
		ctx, store := withData(t)
		uow := store.Begin()
		repo := NewsItems(uow)

		item, err := repo.Get(ctx, 1)
		if err != nil || item == nil {
			t.Fatalf("Get: %v", err)
		}
		item.Views++
		item.Title = "not written"
		repo.Update(item, Columns.News.Views)
		if err := uow.SaveChanges(ctx); err != nil {
			t.Fatalf("SaveChanges: %v", err)
		}

		got, err := repo.Get(ctx, 1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Views != 501 {
			t.Fatalf("expected views 501, got %d", got.Views)
		}
		if got.Title == "not written" {
			t.Fatalf("title should not be updated")
		}
	})

	t.Run("IncrementIsAtomicAcrossUnitsOfWork", func(t *testing.T) {
		ctx, store := withData(t)
		first, second := store.Begin(), store.Begin()

		a, err := NewsItems(first).Get(ctx, 1)
		if err != nil || a == nil {
			t.Fatalf("Get: %v", err)
		}
		b, err := NewsItems(second).Get(ctx, 1)
		if err != nil || b == nil {
			t.Fatalf("Get: %v", err)
		}

		NewsItems(first).Increment(a, Columns.News.Views)
		NewsItems(second).Increment(b, Columns.News.Views)
		if err := first.SaveChanges(ctx); err != nil {
			t.Fatalf("SaveChanges: %v", err)
		}
		if err := second.SaveChanges(ctx); err != nil {
			t.Fatalf("SaveChanges: %v", err)
		}

		if a.Views != 501 || b.Views != 502 {
			t.Fatalf("expected returned views 501 and 502, got %d and %d", a.Views, b.Views)
		}
	})

	t.Run("RemoveMissingRowReturnsErrNoRows", func(t *testing.T) {
		ctx, store := withData(t)
		uow := store.Begin()
		NewsItems(uow).Remove(&News{ID: 99999})

		if err := uow.SaveChanges(ctx); !errors.Is(err, ErrNoRows) {
			t.Fatalf("expected ErrNoRows, got %v", err)
		}
	})
}
