package story

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/sentence-chain/domain"
)

const defaultRebuildTimeout = 30 * time.Second

type Service struct {
	sentenceRepo domain.SentenceRepository
	likeRepo     domain.LikeRepository
	policy       domain.DailyPolicy
	boardCache   domain.BoardCache
	locker       domain.Locker
	clock        domain.Clock
	boardTTL     time.Duration

	validate     *validator.Validate
	rebuildGroup singleflight.Group
}

var (
	_ domain.StoryUsecase = (*Service)(nil)
	_ domain.BoardWarmer  = (*Service)(nil)
)

// NewService will create a new story service object
func NewService(
	s domain.SentenceRepository,
	l domain.LikeRepository,
	p domain.DailyPolicy,
	bc domain.BoardCache,
	lk domain.Locker,
	c domain.Clock,
	boardTTL time.Duration,
) *Service {
	return &Service{
		sentenceRepo: s,
		likeRepo:     l,
		policy:       p,
		boardCache:   bc,
		locker:       lk,
		clock:        c,
		boardTTL:     boardTTL,
		validate:     newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterAlias(domain.SentenceTextRule, fmt.Sprintf("required,max=%d", domain.MaxSentenceLength))
	return v
}

func (a *Service) Open(ctx context.Context, profile string) (domain.DayStatus, error) {
	unlock := a.locker.Lock(profile)
	err := a.policy.Normalize(ctx, profile)
	unlock()
	if err != nil {
		return domain.DayStatus{}, err
	}
	return a.Status(ctx, profile)
}

func (a *Service) Status(ctx context.Context, profile string) (domain.DayStatus, error) {
	submitted, err := a.policy.HasSubmitted(ctx, profile)
	if err != nil {
		return domain.DayStatus{}, err
	}
	return domain.DayStatus{Today: a.policy.Today(), Submitted: submitted}, nil
}

func (a *Service) Submit(ctx context.Context, profile string, d domain.Draft) (domain.Sentence, error) {
	unlock := a.locker.Lock(profile)
	defer unlock()

	submitted, err := a.policy.HasSubmitted(ctx, profile)
	if err != nil {
		return domain.Sentence{}, err
	}
	if submitted {
		return domain.Sentence{}, domain.ErrAlreadySubmitted
	}

	d.Author = strings.TrimSpace(d.Author)
	if d.Author == "" {
		d.Author = domain.DefaultAuthor
	}
	d.Text = strings.TrimSpace(d.Text)
	if err := a.validateDraft(d); err != nil {
		return domain.Sentence{}, err
	}

	now := a.clock.Now()
	sentence := domain.Sentence{
		ID:        uuid.NewString(),
		Text:      d.Text,
		Author:    d.Author,
		Timestamp: now,
		Date:      now.Format(domain.DateLayout),
		Likes:     0,
	}

	if err := a.sentenceRepo.Append(ctx, profile, sentence); err != nil {
		return domain.Sentence{}, fmt.Errorf("append sentence: %w", err)
	}
	if err := a.policy.MarkSubmitted(ctx, profile, sentence.Date); err != nil {
		return domain.Sentence{}, fmt.Errorf("mark submitted: %w", err)
	}

	if err := a.boardCache.DeleteBoard(ctx, profile); err != nil {
		logrus.Warnf("failed to drop board snapshot, profile: %s, err: %v", profile, err)
	}
	return sentence, nil
}

func (a *Service) validateDraft(d domain.Draft) error {
	err := a.validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.ActualTag() {
		case "required":
			return domain.ErrEmptySentence
		case "max":
			return domain.ErrSentenceTooLong
		}
	}
	return domain.ErrBadParamInput
}

func (a *Service) Feed(ctx context.Context, profile string) ([]domain.FeedItem, error) {
	list, err := a.sentenceRepo.ListByDate(ctx, profile, a.policy.Today())
	if err != nil {
		return nil, err
	}
	likes, err := a.likeRepo.Get(ctx, profile)
	if err != nil {
		return nil, err
	}

	chronological(list)
	res := make([]domain.FeedItem, len(list))
	for i := range list {
		res[i] = domain.FeedItem{
			Sentence: list[i],
			Liked:    likes[list[i].ID],
		}
	}
	return res, nil
}

func (a *Service) Leaderboard(ctx context.Context, profile string) ([]domain.Sentence, error) {
	list, err := a.sentenceRepo.ListByDate(ctx, profile, a.policy.Today())
	if err != nil {
		return nil, err
	}
	return topByLikes(list, domain.LeaderboardSize), nil
}

func (a *Service) Archive(ctx context.Context, profile string) ([]domain.DayStory, error) {
	groups, err := a.sentenceRepo.GroupByDate(ctx, profile)
	if err != nil {
		return nil, err
	}
	return byDateDesc(groups), nil
}

// Board 返回页面加载所需的全部数据，优先使用逻辑过期的快照
func (a *Service) Board(ctx context.Context, profile string) (domain.Board, error) {
	b, expired, err := a.boardCache.GetBoard(ctx, profile)
	if err == nil && b.Today == a.policy.Today() {
		if expired {
			go a.rebuild(profile)
		}
		return b, nil
	}
	if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to GetBoard from cache: %v", err)
	}

	return a.build(ctx, profile)
}

// Warm rebuilds the snapshot of profile
func (a *Service) Warm(ctx context.Context, profile string) error {
	_, err := a.build(ctx, profile)
	return err
}

// rebuild 在后台重建快照，最多耗时一个快照 TTL
func (a *Service) rebuild(profile string) {
	timeout := a.boardTTL
	if timeout <= 0 {
		timeout = defaultRebuildTimeout
	}

	_, err, _ := a.rebuildGroup.Do(profile, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return a.build(ctx, profile)
	})
	if err != nil {
		logrus.Errorf("rebuild board failed for profile %s: %v", profile, err)
	}
}

func (a *Service) build(ctx context.Context, profile string) (domain.Board, error) {
	status, err := a.Open(ctx, profile)
	if err != nil {
		return domain.Board{}, err
	}

	var (
		feed []domain.FeedItem
		top  []domain.Sentence
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		feed, err = a.Feed(gctx, profile)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = a.Leaderboard(gctx, profile)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Board{}, err
	}

	b := domain.Board{
		DayStatus:   status,
		Feed:        feed,
		Leaderboard: top,
		BuiltAt:     a.clock.Now(),
	}
	if err := a.boardCache.SetBoard(ctx, profile, b, a.boardTTL); err != nil {
		logrus.Warnf("failed to SetBoard to cache: %v", err)
	}
	return b, nil
}
