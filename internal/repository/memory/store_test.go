package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/repository/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "p1", domain.KeyLikes)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "p1", domain.KeyLikes, []byte(`{"a":true}`)))
		got, err := s.Get(ctx, "p1", domain.KeyLikes)
		require.NoError(t, err)
		assert.Equal(t, `{"a":true}`, string(got))
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		_, err := s.Get(ctx, "p2", domain.KeyLikes)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("returned bytes are a copy", func(t *testing.T) {
		got, err := s.Get(ctx, "p1", domain.KeyLikes)
		require.NoError(t, err)
		got[0] = 'x'
		again, err := s.Get(ctx, "p1", domain.KeyLikes)
		require.NoError(t, err)
		assert.Equal(t, `{"a":true}`, string(again))
	})

	t.Run("del", func(t *testing.T) {
		require.NoError(t, s.Del(ctx, "p1", domain.KeyLikes))
		require.NoError(t, s.Del(ctx, "nobody", domain.KeyLikes))
		_, err := s.Get(ctx, "p1", domain.KeyLikes)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})
}
