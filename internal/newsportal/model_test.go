package newsportal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"": RoleUser, "Admin": RoleAdmin, "Writer": RoleWriter, "User": RoleUser} {
		role, err := ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, role)
	}

	_, err := ParseRole("admin")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestActor_CanModify(t *testing.T) {
	assert.True(t, Actor{UserID: 1, Role: RoleAdmin}.CanModify(2))
	assert.True(t, Actor{UserID: 2, Role: RoleWriter}.CanModify(2))
	assert.False(t, Actor{UserID: 3, Role: RoleWriter}.CanModify(2))
	assert.False(t, Actor{Role: RoleAdmin}.CanModify(0))
}

func TestActorContext(t *testing.T) {
	ctx := context.Background()
	assert.True(t, ActorFrom(ctx).Anonymous())

	actor := Actor{UserID: 5, Username: "writer", Role: RoleWriter}
	assert.Equal(t, actor, ActorFrom(WithActor(ctx, actor)))
}
