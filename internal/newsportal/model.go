package newsportal

import (
	"context"
	"fmt"
	"time"
)

type Category struct {
	ID   int
	Name string
	News []News
}

type News struct {
	ID           int
	Title        string
	Description  string
	Date         time.Time
	Views        int
	CategoryID   int
	CategoryName string
	AuthorID     int
	AuthorName   string
}

// User is the public projection of an account. It never carries the password hash.
type User struct {
	ID       int
	Username string
	Role     Role
}

// Registration is the input of AddUser.
type Registration struct {
	Username string
	Role     Role
	Password string
}

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleWriter Role = "Writer"
	RoleUser   Role = "User"
)

// ParseRole returns the role with the given name. An empty name means RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleAdmin, RoleWriter, RoleUser:
		return Role(s), nil
	}

	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

func (r Role) CanPublish() bool {
	return r == RoleAdmin || r == RoleWriter
}

// Actor is the authenticated identity a mutating call is performed on behalf of.
// The zero Actor is anonymous.
type Actor struct {
	UserID   int
	Username string
	Role     Role
}

func (a Actor) Anonymous() bool {
	return a.UserID == 0
}

func (a Actor) IsAdmin() bool {
	return !a.Anonymous() && a.Role == RoleAdmin
}

// CanModify reports whether the actor may edit or delete news written by authorID.
func (a Actor) CanModify(authorID int) bool {
	return a.IsAdmin() || (!a.Anonymous() && a.UserID == authorID)
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the actor stored in ctx, or the anonymous actor.
func ActorFrom(ctx context.Context) Actor {
	a, _ := ctx.Value(actorKey{}).(Actor)
	return a
}
