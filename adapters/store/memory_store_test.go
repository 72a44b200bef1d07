package store

import (
	"context"
	"testing"

	"github.com/seimoney/seimoney-go/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	tokens := NewMemoryStore()
	ctx := context.Background()

	_, err := tokens.Token(ctx)
	assert.ErrorIs(t, err, core.ErrTokenNotFound)

	require.NoError(t, tokens.SetToken(ctx, "tok123"))

	token, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestMemoryStoreDelete(t *testing.T) {
	tokens := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, tokens.SetToken(ctx, "tok123"))
	require.NoError(t, tokens.DeleteToken(ctx))

	_, err := tokens.Token(ctx)
	assert.ErrorIs(t, err, core.ErrTokenNotFound)
}

func TestMemoryStoreEmptyTokenIsStillSet(t *testing.T) {
	tokens := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, tokens.SetToken(ctx, ""))

	token, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
