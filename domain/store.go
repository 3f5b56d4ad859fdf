package domain

import "context"

// Names of the records every profile owns.
const (
	KeySentences      = "sentenceChain_sentences"
	KeySubmissionDate = "sentenceChain_submissionDate"
	KeyLikes          = "sentenceChain_likes"
)

// Store is the persistent key-value adapter. A profile is an isolated
// namespace; nothing written under one profile is visible to another.
type Store interface {
	// Get returns the raw bytes stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, profile, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, profile, key string, value []byte) error

	// Del removes key. Removing a missing key is not an error.
	Del(ctx context.Context, profile, key string) error
}

// Locker serializes read-modify-write cycles of one profile.
type Locker interface {
	Lock(profile string) (unlock func())
}
