package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/daniilsolovey/news-website/internal/db"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

type UserManager struct {
	store  *db.Store
	hasher PasswordHasher
	log    *slog.Logger

	// bootstrap serializes registrations by non-admins so that only one first user is created.
	bootstrap sync.Mutex
}

func NewUserManager(store *db.Store, hasher PasswordHasher, logger *slog.Logger) *UserManager {
	return &UserManager{
		store:  store,
		hasher: hasher,
		log:    logger,
	}
}

// AddUser registers an account. Only admins may register users, except for the very first one,
// which may be registered anonymously.
func (m *UserManager) AddUser(ctx context.Context, actor Actor, r Registration) (*User, error) {
	username := normalizeUsername(r.Username)
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return nil, validationf("username must be %d to %d characters long", MinUsernameLength, MaxUsernameLength)
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return nil, validationf("password must be at least %d characters long", MinPasswordLength)
	}
	role, err := ParseRole(string(r.Role))
	if err != nil {
		return nil, err
	}

	uow := m.store.Begin()
	repo := db.Users(uow)

	if !actor.IsAdmin() {
		m.bootstrap.Lock()
		defer m.bootstrap.Unlock()

		count, err := repo.All().Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("db get users count: %w", err)
		}
		if count > 0 && actor.Anonymous() {
			return nil, ErrUnauthenticated
		} else if count > 0 {
			return nil, fmt.Errorf("%w: only admins can register users", ErrForbidden)
		}
	}

	existing, err := repo.Find(ctx, db.NewQuery().Where(db.Columns.User.Username, db.OpEq, username))
	if err != nil {
		return nil, fmt.Errorf("db find user: %w", err)
	} else if existing != nil {
		return nil, validationf("username %q is taken", username)
	}

	hash, err := m.hasher.Hash(r.Password)
	if err != nil {
		return nil, err
	}

	item := &db.User{
		Username:     username,
		Role:         string(role),
		PasswordHash: hash,
	}
	repo.Add(item)
	if err := uow.SaveChanges(ctx); err != nil {
		return nil, commitError(err, fmt.Sprintf("username %q is taken", username))
	}

	m.log.InfoContext(ctx, "user added", "id", item.ID, "username", item.Username, "role", item.Role)

	user := NewUser(item)
	return &user, nil
}

// Authenticate returns the user when password matches, nil otherwise. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (m *UserManager) Authenticate(ctx context.Context, username, password string) (*User, error) {
	item, err := m.find(ctx, m.store.Begin(), username)
	if err != nil {
		return nil, err
	}

	hash := ""
	if item != nil {
		hash = item.PasswordHash
	}
	if !m.hasher.Compare(hash, password) {
		m.log.DebugContext(ctx, "authentication failed", "username", username)
		return nil, nil
	}

	user := NewUser(item)
	return &user, nil
}

// UserByUsername returns the user, or nil. It does not authenticate.
func (m *UserManager) UserByUsername(ctx context.Context, username string) (*User, error) {
	item, err := m.find(ctx, m.store.Begin(), username)
	if err != nil || item == nil {
		return nil, err
	}

	user := NewUser(item)
	return &user, nil
}

// DeleteUser removes the account with u.Username together with its news. Admins may delete
// anyone, other users only themselves.
func (m *UserManager) DeleteUser(ctx context.Context, actor Actor, u User) error {
	if actor.Anonymous() {
		return ErrUnauthenticated
	}

	uow := m.store.Begin()
	item, err := m.find(ctx, uow, u.Username)
	if err != nil {
		return err
	} else if item == nil {
		return fmt.Errorf("%w: user %q", ErrNotFound, u.Username)
	}

	if !actor.IsAdmin() && actor.UserID != item.ID {
		return fmt.Errorf("%w: cannot delete user %q", ErrForbidden, item.Username)
	}

	db.Users(uow).Remove(item)
	if err := uow.SaveChanges(ctx); err != nil {
		return commitError(err, fmt.Sprintf("user %q", item.Username))
	}

	m.log.InfoContext(ctx, "user deleted", "username", item.Username, "by", actor.Username)

	return nil
}

func (m *UserManager) UsersCount(ctx context.Context) (int, error) {
	count, err := db.Users(m.store.Begin()).All().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get users count: %w", err)
	}

	return count, nil
}

func (m *UserManager) find(ctx context.Context, uow *db.UnitOfWork, username string) (*db.User, error) {
	q := db.NewQuery().Where(db.Columns.User.Username, db.OpEq, normalizeUsername(username))
	item, err := db.Users(uow).Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db find user: %w", err)
	}

	return item, nil
}

// normalizeUsername is applied to every username stored or looked up.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
