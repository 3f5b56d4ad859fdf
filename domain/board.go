package domain

import (
	"context"
	"time"
)

// Board is everything a page load shows for one profile
type Board struct {
	DayStatus
	Feed        []FeedItem `json:"feed"`
	Leaderboard []Sentence `json:"leaderboard"`
	BuiltAt     time.Time  `json:"built_at"`
}

// BoardCache keeps composed boards with a logical expiry
type BoardCache interface {
	// GetBoard returns ErrCacheMiss when nothing is cached.
	GetBoard(ctx context.Context, profile string) (res Board, expired bool, err error)
	SetBoard(ctx context.Context, profile string, b Board, ttl time.Duration) error
	DeleteBoard(ctx context.Context, profile string) error
}
