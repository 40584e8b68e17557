package newsportal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/news-website/internal/db"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store      *db.Store
	categories *CategoryManager
	news       *NewsManager
	users      *UserManager
	hasher     *countingHasher

	admin, writer, otherWriter, reader Actor
	tech, sports                       Category
}

type countingHasher struct {
	*BcryptHasher
	compares int
}

func (h *countingHasher) Compare(hash, password string) bool {
	h.compares++
	return h.BcryptHasher.Compare(hash, password)
}

func newFixture(t *testing.T) (context.Context, *fixture) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := db.NewInMemory(logger)

	f := &fixture{
		store:      store,
		categories: NewCategoryManager(store, logger),
		news:       NewNewsManager(store, logger),
		hasher:     &countingHasher{BcryptHasher: NewBcryptHasher(bcrypt.MinCost)},
	}
	f.users = NewUserManager(store, f.hasher, logger)
	f.news.now = func() time.Time { return testNow }

	f.admin = f.addUser(t, Actor{}, "admin", RoleAdmin)
	f.writer = f.addUser(t, f.admin, "writer", RoleWriter)
	f.otherWriter = f.addUser(t, f.admin, "other", RoleWriter)
	f.reader = f.addUser(t, f.admin, "reader", RoleUser)

	tech, err := f.categories.AddCategory(ctx, f.admin, Category{Name: "Technology"})
	require.NoError(t, err)
	sports, err := f.categories.AddCategory(ctx, f.admin, Category{Name: "Sports"})
	require.NoError(t, err)
	f.tech, f.sports = *tech, *sports

	return ctx, f
}

func (f *fixture) addUser(t *testing.T, by Actor, username string, role Role) Actor {
	t.Helper()
	u, err := f.users.AddUser(context.Background(), by, Registration{Username: username, Role: role, Password: username + "-secret"})
	require.NoError(t, err)
	return Actor{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// seedNews stores news rows directly, bypassing the manager defaults.
func (f *fixture) seedNews(t *testing.T, rows ...db.News) []int {
	t.Helper()
	uow := f.store.Begin()
	items := make([]*db.News, len(rows))
	for i := range rows {
		items[i] = &rows[i]
		if items[i].Title == "" {
			items[i].Title = "Title"
		}
		if items[i].Description == "" {
			items[i].Description = "Description"
		}
		db.NewsItems(uow).Add(items[i])
	}
	require.NoError(t, uow.SaveChanges(context.Background()))

	ids := make([]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	return ids
}

func (f *fixture) storedNews(t *testing.T, id int) *db.News {
	t.Helper()
	item, err := db.NewsItems(f.store.Begin()).Get(context.Background(), id)
	require.NoError(t, err)
	return item
}
