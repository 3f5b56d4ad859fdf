package domain

import "context"

// LikeSet is the per-profile like membership map.
// An id is liked only while it is present with a true value.
type LikeSet map[string]bool

// LikeState is the outcome of a toggle
type LikeState struct {
	SentenceID string `json:"id"`
	Changed    bool   `json:"changed"` // false when the sentence was not found
	Liked      bool   `json:"liked"`
	Likes      int64  `json:"likes"`
}

// LikeRepository persists the like membership map
type LikeRepository interface {
	Get(ctx context.Context, profile string) (LikeSet, error)
	Save(ctx context.Context, profile string, likes LikeSet) error
}

type LikeUsecase interface {
	// Toggle flips the like of today's sentence id for the profile and
	// moves its counter in lockstep. A missing id is a silent no-op.
	Toggle(ctx context.Context, profile, id string) (LikeState, error)
}
