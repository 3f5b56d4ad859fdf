package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/sentence-chain/internal/repository/cache"
)

func TestDataWithLogicalExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	d := cache.NewDataWithLogicalExpire("board", now, 30*time.Second)

	assert.Equal(t, "board", d.Data)
	assert.Equal(t, now, d.CreatedAt)
	assert.False(t, d.IsLogicalExpired(now))
	assert.False(t, d.IsLogicalExpired(now.Add(30*time.Second)))
	assert.True(t, d.IsLogicalExpired(now.Add(31*time.Second)))
}
