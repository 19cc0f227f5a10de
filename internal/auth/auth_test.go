package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountContext(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		assert.Empty(t, Account(ctx))
	})
	t.Run("ok", func(t *testing.T) {
		ctx := WithAccount(ctx, "carol.near")
		assert.Equal(t, "carol.near", Account(ctx))
	})
	t.Run("overwrite", func(t *testing.T) {
		ctx := WithAccount(WithAccount(ctx, "alice.near"), "bob.near")
		assert.Equal(t, "bob.near", Account(ctx))
	})
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner("carol.near", "carol.near"))
	assert.False(t, IsOwner("alice.near", "carol.near"))
	// no normalization of any kind
	assert.False(t, IsOwner("Carol.near", "carol.near"))
	assert.False(t, IsOwner(" carol.near", "carol.near"))
	// anonymous caller against uninitialized owner still matches equality,
	// the service never reaches the check in that state
	assert.True(t, IsOwner("", ""))
}
