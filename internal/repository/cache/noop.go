package cache

import (
	"context"
	"time"

	"github.com/Guyuepp/sentence-chain/domain"
)

// noopBoardCache is used when no cache server is configured
type noopBoardCache struct{}

var _ domain.BoardCache = noopBoardCache{}

func NewNoopBoardCache() domain.BoardCache {
	return noopBoardCache{}
}

func (noopBoardCache) GetBoard(context.Context, string) (domain.Board, bool, error) {
	return domain.Board{}, false, domain.ErrCacheMiss
}

func (noopBoardCache) SetBoard(context.Context, string, domain.Board, time.Duration) error {
	return nil
}

func (noopBoardCache) DeleteBoard(context.Context, string) error {
	return nil
}
