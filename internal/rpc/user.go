package rpc

import (
	"context"
	"time"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u newsportal.User) (string, time.Time, error)
}

// UserService provides RPC methods for accounts.
type UserService struct {
	zenrpc.Service
	manager *newsportal.UserManager
	tokens  TokenIssuer
}

func NewUserService(manager *newsportal.UserManager, tokens TokenIssuer) *UserService {
	return &UserService{manager: manager, tokens: tokens}
}

// Login returns a bearer token for valid credentials.
//
//zenrpc:username account name
//zenrpc:password account password
//zenrpc:return access token
//zenrpc:401 invalid username or password
//zenrpc:500 internal server error
func (s *UserService) Login(ctx context.Context, username, password string) (*Token, error) {
	user, err := s.manager.Authenticate(ctx, username, password)
	if err != nil {
		return nil, newError(err)
	} else if user == nil {
		return nil, zenrpc.NewStringError(401, "invalid username or password")
	}

	token, expiresAt, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}

	return &Token{Token: token, ExpiresAt: expiresAt, User: NewUser(*user)}, nil
}

// Register creates an account. Admin only, except for the first account.
//
//zenrpc:user account to create
//zenrpc:return created user
//zenrpc:400 validation failed
//zenrpc:401 authentication required
//zenrpc:403 forbidden
//zenrpc:500 internal server error
func (s *UserService) Register(ctx context.Context, user Registration) (*User, error) {
	created, err := s.manager.AddUser(ctx, newsportal.ActorFrom(ctx), newsportal.Registration{
		Username: user.Username,
		Role:     newsportal.Role(user.Role),
		Password: user.Password,
	})
	if err != nil {
		return nil, newError(err)
	}

	result := NewUser(*created)
	return &result, nil
}

// ByUsername returns a user by name.
//
//zenrpc:username account name
//zenrpc:return user
//zenrpc:404 user not found
//zenrpc:500 internal server error
func (s *UserService) ByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.manager.UserByUsername(ctx, username)
	if err != nil {
		return nil, newError(err)
	} else if user == nil {
		return nil, zenrpc.NewStringError(404, "user not found")
	}

	result := NewUser(*user)
	return &result, nil
}

// Delete removes an account and its news.
//
//zenrpc:username account name
//zenrpc:401 authentication required
//zenrpc:403 forbidden
//zenrpc:404 user not found
//zenrpc:500 internal server error
func (s *UserService) Delete(ctx context.Context, username string) (bool, error) {
	if err := s.manager.DeleteUser(ctx, newsportal.ActorFrom(ctx), newsportal.User{Username: username}); err != nil {
		return false, newError(err)
	}

	return true, nil
}
