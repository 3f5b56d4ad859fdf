package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/sentence-chain/domain"
)

type likeRepository struct {
	store domain.Store
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(store domain.Store) *likeRepository {
	return &likeRepository{store}
}

// Get never returns a nil set
func (r *likeRepository) Get(ctx context.Context, profile string) (domain.LikeSet, error) {
	raw, err := r.store.Get(ctx, profile, domain.KeyLikes)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return domain.LikeSet{}, nil
	} else if err != nil {
		return nil, err
	}

	likes := domain.LikeSet{}
	if err := json.Unmarshal(raw, &likes); err != nil || likes == nil {
		logrus.Warnf("stored likes of profile %s are unreadable, treating as empty: %v", profile, err)
		return domain.LikeSet{}, nil
	}
	return likes, nil
}

func (r *likeRepository) Save(ctx context.Context, profile string, likes domain.LikeSet) error {
	if likes == nil {
		likes = domain.LikeSet{}
	}
	data, err := json.Marshal(likes)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, profile, domain.KeyLikes, data)
}
