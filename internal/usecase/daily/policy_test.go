package daily_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/repository"
	"github.com/Guyuepp/sentence-chain/internal/repository/memory"
	"github.com/Guyuepp/sentence-chain/internal/usecase/daily"
)

type fixture struct {
	now       time.Time
	sentences domain.SentenceRepository
	gate      domain.GateRepository
	policy    *daily.Policy
}

func newFixture(now time.Time) *fixture {
	store := memory.NewStore()
	f := &fixture{
		now:       now,
		sentences: repository.NewSentenceRepository(store),
		gate:      repository.NewGateRepository(store),
	}
	f.policy = daily.NewPolicy(f.sentences, f.gate, domain.ClockFunc(func() time.Time { return f.now }))
	return f
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	f := newFixture(time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC).In(loc))
	assert.Equal(t, "2024-01-02", f.policy.Today())
}

func TestNormalizeSeedsFirstRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, f.policy.Normalize(ctx, "p1"))

	all, present, err := f.sentences.All(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, present)
	require.Len(t, all, 3)

	ids := map[string]bool{}
	for _, s := range all {
		assert.True(t, s.Seed)
		assert.Equal(t, "2024-01-01", s.Date)
		assert.True(t, s.Timestamp.Before(f.now))
		assert.Positive(t, s.Likes)
		ids[s.ID] = true
	}
	assert.Len(t, ids, 3)
	assert.Equal(t, "TimeKeeper", all[0].Author)
	assert.Equal(t, int64(15), all[2].Likes)

	// a second run does not reseed
	require.NoError(t, f.policy.Normalize(ctx, "p1"))
	again, _, err := f.sentences.All(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestNormalizeKeepsGateWhenSomeoneWroteToday(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, f.sentences.Append(ctx, "p1", domain.Sentence{ID: "a", Date: "2024-01-01"}))
	require.NoError(t, f.gate.Set(ctx, "p1", "2024-01-01"))

	require.NoError(t, f.policy.Normalize(ctx, "p1"))

	submitted, err := f.policy.HasSubmitted(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, submitted)
}

func TestNormalizeClearsGateOnRollover(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC))

	require.NoError(t, f.sentences.Append(ctx, "p1", domain.Sentence{ID: "a", Date: "2024-01-01", Timestamp: f.now}))
	require.NoError(t, f.policy.MarkSubmitted(ctx, "p1", "2024-01-01"))

	f.now = f.now.Add(2 * time.Minute)
	require.NoError(t, f.policy.Normalize(ctx, "p1"))

	date, err := f.gate.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, date)

	// the sentence keeps its original date
	all, _, err := f.sentences.All(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", all[0].Date)
}

func TestNormalizeClearsGateRegardlessOfValue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC))

	require.NoError(t, f.sentences.Append(ctx, "p1", domain.Sentence{ID: "a", Date: "2024-01-01"}))
	require.NoError(t, f.gate.Set(ctx, "p1", "2024-01-05"))

	require.NoError(t, f.policy.Normalize(ctx, "p1"))

	date, err := f.gate.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, date)
}

func TestHasSubmitted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))

	submitted, err := f.policy.HasSubmitted(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, submitted)

	require.NoError(t, f.policy.MarkSubmitted(ctx, "p1", "2024-01-01"))
	submitted, err = f.policy.HasSubmitted(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, submitted, "a gate from a previous day does not block")

	require.NoError(t, f.policy.MarkSubmitted(ctx, "p1", "2024-01-02"))
	submitted, err = f.policy.HasSubmitted(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, submitted)
}
