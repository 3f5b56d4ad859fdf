package like

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/sentence-chain/domain"
)

type service struct {
	sentenceRepo domain.SentenceRepository
	likeRepo     domain.LikeRepository
	policy       domain.DailyPolicy
	boardCache   domain.BoardCache
	locker       domain.Locker
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(s domain.SentenceRepository, l domain.LikeRepository, p domain.DailyPolicy, bc domain.BoardCache, lk domain.Locker) *service {
	return &service{
		sentenceRepo: s,
		likeRepo:     l,
		policy:       p,
		boardCache:   bc,
		locker:       lk,
	}
}

// Toggle 点赞或取消点赞。
// 只能操作今天的句子；找不到时静默返回 Changed=false，不写入任何数据。
func (s *service) Toggle(ctx context.Context, profile, id string) (domain.LikeState, error) {
	unlock := s.locker.Lock(profile)
	defer unlock()

	state := domain.LikeState{SentenceID: id}

	likes, err := s.likeRepo.Get(ctx, profile)
	if err != nil {
		return state, fmt.Errorf("load likes: %w", err)
	}

	all, _, err := s.sentenceRepo.All(ctx, profile)
	if err != nil {
		return state, fmt.Errorf("load sentences: %w", err)
	}

	today := s.policy.Today()
	var target *domain.Sentence
	for i := range all {
		if all[i].ID == id && all[i].Date == today {
			target = &all[i]
			break
		}
	}
	if target == nil {
		logrus.Debugf("like toggle on unknown sentence %s, profile: %s", id, profile)
		return state, nil
	}

	if likes[id] {
		delete(likes, id)
		target.Likes = max(0, target.Likes-1)
	} else {
		likes[id] = true
		target.Likes = max(0, target.Likes) + 1
	}

	if err := s.likeRepo.Save(ctx, profile, likes); err != nil {
		return state, fmt.Errorf("save likes: %w", err)
	}
	if err := s.sentenceRepo.UpdateByID(ctx, profile, *target); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logrus.Warnf("sentence %s vanished during like toggle, profile: %s", id, profile)
			return state, nil
		}
		return state, fmt.Errorf("update sentence: %w", err)
	}

	if err := s.boardCache.DeleteBoard(ctx, profile); err != nil {
		logrus.Warnf("failed to drop board snapshot, profile: %s, err: %v", profile, err)
	}

	state.Changed = true
	state.Liked = likes[id]
	state.Likes = target.Likes
	return state, nil
}
