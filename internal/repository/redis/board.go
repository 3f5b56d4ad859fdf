package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/repository/cache"
)

const (
	KeyBoard = "sentenceChain:%s:board"

	// physical expiry of a snapshot, on top of its logical ttl
	boardGracePeriod = 10 * time.Minute
)

type boardCache struct {
	client *redis.Client
	clock  domain.Clock
}

var _ domain.BoardCache = (*boardCache)(nil)

func NewBoardCache(client *redis.Client, clock domain.Clock) *boardCache {
	return &boardCache{
		client: client,
		clock:  clock,
	}
}

func (c *boardCache) GetBoard(ctx context.Context, profile string) (domain.Board, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyBoard, profile)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Board{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Board{}, false, err
	}

	var snapshot cache.DataWithLogicalExpire[domain.Board]
	if err = json.Unmarshal(data, &snapshot); err != nil {
		logrus.Warnf("dropping unreadable board snapshot, profile: %s, err: %v", profile, err)
		return domain.Board{}, false, domain.ErrCacheMiss
	}
	return snapshot.Data, snapshot.IsLogicalExpired(c.clock.Now()), nil
}

func (c *boardCache) SetBoard(ctx context.Context, profile string, b domain.Board, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(b, c.clock.Now(), ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyBoard, profile), data, ttl+boardGracePeriod).Err()
}

func (c *boardCache) DeleteBoard(ctx context.Context, profile string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyBoard, profile)).Err()
}
