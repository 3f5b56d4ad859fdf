package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/sentence-chain/domain"
)

const (
	KeyProfileRecord = "sentenceChain:%s:%s"
)

type store struct {
	client *redis.Client
}

var _ domain.Store = (*store)(nil)

func NewStore(client *redis.Client) *store {
	return &store{
		client,
	}
}

func recordKey(profile, key string) string {
	return fmt.Sprintf(KeyProfileRecord, profile, key)
}

func (s *store) Get(ctx context.Context, profile, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, recordKey(profile, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrKeyNotFound
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *store) Set(ctx context.Context, profile, key string, value []byte) error {
	return s.client.Set(ctx, recordKey(profile, key), value, 0).Err()
}

func (s *store) Del(ctx context.Context, profile, key string) error {
	return s.client.Del(ctx, recordKey(profile, key)).Err()
}
