package repository

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"slices"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/sentence-chain/domain"
)

const (
	generationStripes = 64
	loadTimeout       = 10 * time.Second
)

// sentenceRepository 在 Store 之上维护句子集合
type sentenceRepository struct {
	store     domain.Store
	loadGroup singleflight.Group

	// 每次写入后递增，合并读取的 key 带上它，写入之后发起的读取不会并入之前的读取
	generations [generationStripes]atomic.Uint64
}

var _ domain.SentenceRepository = (*sentenceRepository)(nil)

func NewSentenceRepository(store domain.Store) *sentenceRepository {
	return &sentenceRepository{
		store: store,
	}
}

type loadResult struct {
	sentences []domain.Sentence
	present   bool
}

// read 直接从 Store 读取完整集合，不可读的数据视为不存在
func (r *sentenceRepository) read(ctx context.Context, profile string) ([]domain.Sentence, bool, error) {
	raw, err := r.store.Get(ctx, profile, domain.KeySentences)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	var sentences []domain.Sentence
	if err := json.Unmarshal(raw, &sentences); err != nil {
		logrus.Warnf("stored sentences of profile %s are unreadable, treating as absent: %v", profile, err)
		return nil, false, nil
	}
	return sentences, true, nil
}

func (r *sentenceRepository) generation(profile string) *atomic.Uint64 {
	h := fnv.New32a()
	h.Write([]byte(profile))
	return &r.generations[h.Sum32()%generationStripes]
}

// load 供只读操作使用：同一 profile 的并发读取合并为一次。
// 写操作必须走 read。
// 合并的读取使用与调用方无关的 ctx，调用方取消只影响自己。
func (r *sentenceRepository) load(ctx context.Context, profile string) ([]domain.Sentence, bool, error) {
	key := profile + "@" + strconv.FormatUint(r.generation(profile).Load(), 10)
	ch := r.loadGroup.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		sentences, present, err := r.read(loadCtx, profile)
		if err != nil {
			return nil, err
		}
		return loadResult{sentences: sentences, present: present}, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		v := res.Val.(loadResult)
		// singleflight 的结果是共享的，返回副本
		return slices.Clone(v.sentences), v.present, nil
	}
}

func (r *sentenceRepository) save(ctx context.Context, profile string, sentences []domain.Sentence) error {
	if sentences == nil {
		sentences = []domain.Sentence{}
	}
	data, err := json.Marshal(sentences)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, profile, domain.KeySentences, data); err != nil {
		return err
	}
	// 写入完成之后才递增
	r.generation(profile).Add(1)
	return nil
}

// All 总是直接读取，供持锁的读-改-写流程使用
func (r *sentenceRepository) All(ctx context.Context, profile string) ([]domain.Sentence, bool, error) {
	return r.read(ctx, profile)
}

func (r *sentenceRepository) ListByDate(ctx context.Context, profile, date string) ([]domain.Sentence, error) {
	all, _, err := r.load(ctx, profile)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Sentence, 0, len(all))
	for _, s := range all {
		if s.Date == date {
			res = append(res, s)
		}
	}
	return res, nil
}

func (r *sentenceRepository) Append(ctx context.Context, profile string, s domain.Sentence) error {
	all, _, err := r.read(ctx, profile)
	if err != nil {
		return err
	}
	return r.save(ctx, profile, append(all, s))
}

func (r *sentenceRepository) UpdateByID(ctx context.Context, profile string, s domain.Sentence) error {
	all, present, err := r.read(ctx, profile)
	if err != nil {
		return err
	}
	if !present {
		return domain.ErrNotFound
	}

	idx := slices.IndexFunc(all, func(item domain.Sentence) bool {
		return item.ID == s.ID
	})
	if idx == -1 {
		return domain.ErrNotFound
	}
	all[idx] = s
	return r.save(ctx, profile, all)
}

func (r *sentenceRepository) GroupByDate(ctx context.Context, profile string) (map[string][]domain.Sentence, error) {
	all, _, err := r.load(ctx, profile)
	if err != nil {
		return nil, err
	}

	res := make(map[string][]domain.Sentence)
	for _, s := range all {
		res[s.Date] = append(res[s.Date], s)
	}
	return res, nil
}

func (r *sentenceRepository) Seed(ctx context.Context, profile string, samples []domain.Sentence) error {
	return r.save(ctx, profile, samples)
}
