package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/news-website/internal/db"
	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type testServer struct {
	e      *echo.Echo
	store  *db.Store
	tokens *TokenIssuer

	adminToken, writerToken, otherToken string
	categoryID                          int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := db.NewInMemory(logger)

	categories := newsportal.NewCategoryManager(store, logger)
	news := newsportal.NewNewsManager(store, logger)
	users := newsportal.NewUserManager(store, newsportal.NewBcryptHasher(bcrypt.MinCost), logger)
	tokens := NewTokenIssuer(testSecret, time.Hour)

	e := NewEcho(logger)
	NewHandler(categories, news, users, tokens, logger).RegisterRoutes(e)

	s := &testServer{e: e, store: store, tokens: tokens}

	admin, err := users.AddUser(ctx, newsportal.Actor{}, newsportal.Registration{Username: "admin", Role: newsportal.RoleAdmin, Password: "admin-secret"})
	require.NoError(t, err)
	adminActor := newsportal.Actor{UserID: admin.ID, Username: admin.Username, Role: admin.Role}

	writer, err := users.AddUser(ctx, adminActor, newsportal.Registration{Username: "writer", Role: newsportal.RoleWriter, Password: "writer-secret"})
	require.NoError(t, err)
	other, err := users.AddUser(ctx, adminActor, newsportal.Registration{Username: "other", Role: newsportal.RoleWriter, Password: "other-secret"})
	require.NoError(t, err)

	s.adminToken = s.token(t, *admin)
	s.writerToken = s.token(t, *writer)
	s.otherToken = s.token(t, *other)

	category, err := categories.AddCategory(ctx, adminActor, newsportal.Category{Name: "Technology"})
	require.NoError(t, err)
	s.categoryID = category.ID

	return s
}

func (s *testServer) token(t *testing.T, u newsportal.User) string {
	t.Helper()
	token, _, err := s.tokens.Issue(u)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) addNews(t *testing.T, token, title string) News {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/news", token, NewsRequest{Title: title, Description: "Body", CategoryID: s.categoryID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var news News
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &news))
	return news
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandler_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestHandler_Login(t *testing.T) {
	s := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/users/login", "", LoginRequest{Username: "writer", Password: "writer-secret"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decode[TokenResponse](t, rec)
		assert.Equal(t, "writer", resp.User.Username)
		assert.Equal(t, "Writer", resp.User.Role)

		actor, err := s.tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, actor.UserID)
		assert.Equal(t, newsportal.RoleWriter, actor.Role)
	})

	t.Run("FailuresHaveSameResponse", func(t *testing.T) {
		wrong := s.do(t, http.MethodPost, "/api/v1/users/login", "", LoginRequest{Username: "writer", Password: "nope"})
		missing := s.do(t, http.MethodPost, "/api/v1/users/login", "", LoginRequest{Username: "ghost", Password: "nope"})

		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, wrong.Code, missing.Code)
		assert.Equal(t, wrong.Body.String(), missing.Body.String())
	})

	t.Run("ResponseHasNoPassword", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/users/login", "", LoginRequest{Username: "admin", Password: "admin-secret"})
		require.Equal(t, http.StatusOK, rec.Code)
		body := strings.ToLower(rec.Body.String())
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "admin-secret")
	})
}

func TestHandler_Auth(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "NotBearer", header: "Basic abc"},
		{name: "Garbage", header: "Bearer not-a-jwt"},
		{name: "WrongSecret", header: "Bearer " + func() string {
			token, _, _ := NewTokenIssuer("other-secret", time.Hour).Issue(newsportal.User{ID: 1, Username: "admin", Role: newsportal.RoleAdmin})
			return token
		}()},
		{name: "Expired", header: "Bearer " + func() string {
			issuer := NewTokenIssuer(testSecret, time.Minute)
			issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
			token, _, _ := issuer.Issue(newsportal.User{ID: 1, Username: "admin", Role: newsportal.RoleAdmin})
			return token
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
			req.Header.Set(echo.HeaderAuthorization, tt.header)
			rec := httptest.NewRecorder()
			s.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("AnonymousReadsAllowed", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("AnonymousWritesRejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/news", "", NewsRequest{Title: "t", Description: "d", CategoryID: s.categoryID})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_Categories(t *testing.T) {
	s := newTestServer(t)

	t.Run("AdminAdds", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/categories", s.adminToken, CategoryRequest{Name: "Sports"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Sports", decode[Category](t, rec).Name)
	})

	t.Run("Duplicate", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/categories", s.adminToken, CategoryRequest{Name: "Sports"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("WriterForbidden", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/categories", s.writerToken, CategoryRequest{Name: "Science"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ListWithNews", func(t *testing.T) {
		s.addNews(t, s.writerToken, "First")

		rec := s.do(t, http.MethodGet, "/api/v1/categories", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		categories := decode[[]Category](t, rec)
		require.Len(t, categories, 2)
		assert.Equal(t, "Technology", categories[0].Name)
		require.Len(t, categories[0].News, 1)
		assert.Equal(t, "First", categories[0].News[0].Title)
		assert.Empty(t, categories[1].News)
	})

	t.Run("NewsOfMissingCategory", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/categories/999/news", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("NewsOfCategory", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/categories/%d/news", s.categoryID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]News](t, rec), 1)
	})
}

func TestHandler_NewsLifecycle(t *testing.T) {
	s := newTestServer(t)
	created := s.addNews(t, s.writerToken, "Launch")
	assert.Zero(t, created.Views)
	assert.Equal(t, "writer", created.AuthorName)

	path := fmt.Sprintf("/api/v1/news/%d", created.ID)

	t.Run("ReadCountsViews", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			rec := s.do(t, http.MethodGet, path, "", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, i, decode[News](t, rec).Views)
		}
	})

	t.Run("OtherWriterCannotEdit", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, path, s.otherToken, NewsRequest{Title: "Hijack", Description: "x", CategoryID: s.categoryID})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("EditMissing", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/news/999", s.adminToken, NewsRequest{Title: "t", Description: "d", CategoryID: s.categoryID})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AuthorEdits", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, path, s.writerToken, NewsRequest{Title: "Launch v2", Description: "Updated", CategoryID: s.categoryID})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		news := decode[News](t, rec)
		assert.Equal(t, "Launch v2", news.Title)
		assert.Equal(t, 3, news.Views)
	})

	t.Run("InvalidID", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("OtherWriterCannotDelete", func(t *testing.T) {
		rec := s.do(t, http.MethodDelete, path, s.otherToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AdminDeletes", func(t *testing.T) {
		rec := s.do(t, http.MethodDelete, path, s.adminToken, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_NewsLists(t *testing.T) {
	s := newTestServer(t)

	uow := s.store.Begin()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, views := range []int{500, 150, 50, 100, 5} {
		db.NewsItems(uow).Add(&db.News{
			Title:       fmt.Sprintf("News %d", i),
			Description: "Body",
			Date:        base.Add(time.Duration(i) * time.Hour),
			Views:       views,
			CategoryID:  s.categoryID,
			AuthorID:    1,
		})
	}
	require.NoError(t, uow.SaveChanges(context.Background()))

	titles := func(list []News) []string {
		out := make([]string, len(list))
		for i := range list {
			out[i] = list[i].Title
		}
		return out
	}

	t.Run("SortedNewestFirst", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news?page=2&page_size=2", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"News 2", "News 1"}, titles(decode[[]News](t, rec)))
	})

	t.Run("SortedOldestFirst", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news?asc=true&page_size=2", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"News 0", "News 1"}, titles(decode[[]News](t, rec)))
	})

	t.Run("Popular", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news/popular?min_views=100", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"News 0", "News 1", "News 3"}, titles(decode[[]News](t, rec)))
	})

	t.Run("PopularDefaultThreshold", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news/popular", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]News](t, rec), 4)
	})

	t.Run("All", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news/all", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]News](t, rec), 5)
	})

	t.Run("Count", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/news/count", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, decode[CountResponse](t, rec).Count)
	})

	t.Run("CountByCategory", func(t *testing.T) {
		uow := s.store.Begin()
		sports := &db.Category{Name: "Sports"}
		db.Categories(uow).Add(sports)
		require.NoError(t, uow.SaveChanges(context.Background()))

		uow = s.store.Begin()
		db.NewsItems(uow).Add(&db.News{Title: "Match", Description: "Body", Date: base, CategoryID: sports.ID, AuthorID: 1})
		require.NoError(t, uow.SaveChanges(context.Background()))

		rec := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/news/count?category_id=%d", sports.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 1, decode[CountResponse](t, rec).Count)

		rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/news/count?category_id=%d", s.categoryID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, decode[CountResponse](t, rec).Count)

		rec = s.do(t, http.MethodGet, "/api/v1/news/count", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 6, decode[CountResponse](t, rec).Count)
	})
}

func TestHandler_Users(t *testing.T) {
	s := newTestServer(t)

	t.Run("WriterCannotRegister", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/users", s.writerToken, RegisterRequest{Username: "friend", Password: "secret1"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AnonymousCannotRegister", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/users", "", RegisterRequest{Username: "friend", Password: "secret1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("AdminRegisters", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/users", s.adminToken, RegisterRequest{Username: "reader", Password: "secret1", Role: "User"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "reader", decode[User](t, rec).Username)
		assert.NotContains(t, rec.Body.String(), "secret1")
	})

	t.Run("Duplicate", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/users", s.adminToken, RegisterRequest{Username: "reader", Password: "secret1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		rec := s.do(t, http.MethodDelete, "/api/v1/users/ghost", s.adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AdminDeletes", func(t *testing.T) {
		rec := s.do(t, http.MethodDelete, "/api/v1/users/reader", s.adminToken, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
