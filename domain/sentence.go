package domain

import (
	"context"
	"time"
)

const (
	// MaxSentenceLength is the hard limit, counted in characters
	MaxSentenceLength = 200
	// WarnSentenceLength is where the character counter starts warning
	WarnSentenceLength = 180
	// LeaderboardSize is the number of sentences on the leaderboard
	LeaderboardSize = 3
	// DefaultAuthor replaces a blank author name
	DefaultAuthor = "Anonymous"

	// SentenceTextRule is the validator alias for sentence text,
	// registered as "required,max=<MaxSentenceLength>"
	SentenceTextRule = "sentence_text"
)

// Sentence is one contribution to the story of a day
type Sentence struct {
	ID        string    `json:"id"`             // Opaque unique identifier
	Text      string    `json:"text"`           // Sentence body
	Author    string    `json:"author"`         // Display name
	Timestamp time.Time `json:"timestamp"`      // Creation instant
	Date      string    `json:"date"`           // Day the sentence belongs to, YYYY-MM-DD
	Likes     int64     `json:"likes"`          // Client-local optimistic counter
	Seed      bool      `json:"seed,omitempty"` // Sample content written on first run
}

// Draft is a submission before it becomes a Sentence
type Draft struct {
	Author string
	Text   string `validate:"sentence_text"`
}

// FeedItem is a sentence together with the profile's like state
type FeedItem struct {
	Sentence
	Liked bool `json:"liked"`
}

// DayStory is every sentence of one date, in story order
type DayStory struct {
	Date      string     `json:"date"`
	Sentences []Sentence `json:"sentences"`
}

// SentenceRepository defines the contract for sentence persistence
type SentenceRepository interface {
	// All returns the whole collection of the profile, bypassing any read
	// sharing, so it is safe inside a read-modify-write cycle.
	// present is false when the collection has never been written or holds
	// unreadable data.
	All(ctx context.Context, profile string) (res []Sentence, present bool, err error)

	// ListByDate returns the sentences dated date. Order is not guaranteed.
	ListByDate(ctx context.Context, profile, date string) ([]Sentence, error)

	// Append adds s to the collection, keeping every prior record.
	Append(ctx context.Context, profile string, s Sentence) error

	// UpdateByID replaces the record with s.ID.
	// Returns ErrNotFound if no record matches.
	UpdateByID(ctx context.Context, profile string, s Sentence) error

	// GroupByDate partitions the whole collection by date.
	GroupByDate(ctx context.Context, profile string) (map[string][]Sentence, error)

	// Seed overwrites the collection with samples.
	Seed(ctx context.Context, profile string, samples []Sentence) error
}

// StoryUsecase is the business logic of the board
type StoryUsecase interface {
	// Open runs the daily policy for a page load and returns the status.
	Open(ctx context.Context, profile string) (DayStatus, error)
	Submit(ctx context.Context, profile string, d Draft) (Sentence, error)
	Feed(ctx context.Context, profile string) ([]FeedItem, error)
	Leaderboard(ctx context.Context, profile string) ([]Sentence, error)
	Archive(ctx context.Context, profile string) ([]DayStory, error)
	Status(ctx context.Context, profile string) (DayStatus, error)
	Board(ctx context.Context, profile string) (Board, error)
}
