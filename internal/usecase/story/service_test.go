package story_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/repository"
	"github.com/Guyuepp/sentence-chain/internal/repository/cache"
	"github.com/Guyuepp/sentence-chain/internal/repository/memory"
	"github.com/Guyuepp/sentence-chain/internal/usecase/daily"
	"github.com/Guyuepp/sentence-chain/internal/usecase/like"
	"github.com/Guyuepp/sentence-chain/internal/usecase/story"
)

type fixture struct {
	now       time.Time
	store     domain.Store
	sentences domain.SentenceRepository
	gate      domain.GateRepository
	svc       *story.Service
	likes     domain.LikeUsecase
}

func newFixture(now time.Time, bc domain.BoardCache) *fixture {
	store := memory.NewStore()
	f := &fixture{
		now:       now,
		store:     store,
		sentences: repository.NewSentenceRepository(store),
		gate:      repository.NewGateRepository(store),
	}
	clock := domain.ClockFunc(func() time.Time { return f.now })
	likeRepo := repository.NewLikeRepository(store)
	locker := repository.NewProfileLocker(0)
	policy := daily.NewPolicy(f.sentences, f.gate, clock)

	f.svc = story.NewService(f.sentences, likeRepo, policy, bc, locker, clock, 30*time.Second)
	f.likes = like.NewService(f.sentences, likeRepo, policy, bc, locker)
	return f
}

func jan1() time.Time {
	return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
}

func TestSubmitExample(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	s, err := f.svc.Submit(ctx, "p1", domain.Draft{Author: "", Text: "Hello world"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", s.Author)
	assert.Equal(t, "Hello world", s.Text)
	assert.Equal(t, "2024-01-01", s.Date)
	assert.Equal(t, int64(0), s.Likes)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Seed)

	gate, err := f.gate.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", gate)

	_, err = f.svc.Submit(ctx, "p1", domain.Draft{Text: faker.Sentence()})
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)

	all, _, err := f.sentences.All(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitTrimsInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	s, err := f.svc.Submit(ctx, "p1", domain.Draft{Author: "  Ada  ", Text: "\t It was a dark night. \n"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Author)
	assert.Equal(t, "It was a dark night.", s.Text)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		text string
		err  error
	}{
		{"empty", "", domain.ErrEmptySentence},
		{"blank", "   \n\t", domain.ErrEmptySentence},
		{"too long", strings.Repeat("a", 201), domain.ErrSentenceTooLong},
		{"exactly the limit", strings.Repeat("a", 200), nil},
		{"multibyte at the limit", strings.Repeat("é", 200), nil},
		{"one past MaxSentenceLength", strings.Repeat("b", domain.MaxSentenceLength+1), domain.ErrSentenceTooLong},
		{"at MaxSentenceLength", strings.Repeat("b", domain.MaxSentenceLength), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(jan1(), cache.NewNoopBoardCache())
			_, err := f.svc.Submit(ctx, "p1", domain.Draft{Author: faker.Name(), Text: tc.text})
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)

				// a rejected submission does not close the gate
				status, err := f.svc.Status(ctx, "p1")
				require.NoError(t, err)
				assert.False(t, status.Submitted)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSubmitAfterRollover(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	_, err := f.svc.Submit(ctx, "p1", domain.Draft{Text: "Day one."})
	require.NoError(t, err)

	f.now = f.now.Add(24 * time.Hour)
	status, err := f.svc.Open(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", status.Today)
	assert.False(t, status.Submitted)

	gate, err := f.gate.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, gate)

	s, err := f.svc.Submit(ctx, "p1", domain.Draft{Text: "Day two."})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", s.Date)
}

func TestOpenSeedsFirstRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	status, err := f.svc.Open(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.DayStatus{Today: "2024-01-01", Submitted: false}, status)

	feed, err := f.svc.Feed(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	for _, item := range feed {
		assert.True(t, item.Seed)
	}
}

func TestFeedIsChronologicalWithLikeState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())
	base := f.now

	for _, s := range []domain.Sentence{
		{ID: "third", Date: "2024-01-01", Timestamp: base.Add(-1 * time.Minute)},
		{ID: "first", Date: "2024-01-01", Timestamp: base.Add(-3 * time.Minute)},
		{ID: "yesterday", Date: "2023-12-31", Timestamp: base.Add(-24 * time.Hour)},
		{ID: "second", Date: "2024-01-01", Timestamp: base.Add(-2 * time.Minute)},
	} {
		require.NoError(t, f.sentences.Append(ctx, "p1", s))
	}

	_, err := f.likes.Toggle(ctx, "p1", "second")
	require.NoError(t, err)

	feed, err := f.svc.Feed(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "first", feed[0].ID)
	assert.Equal(t, "second", feed[1].ID)
	assert.Equal(t, "third", feed[2].ID)
	assert.False(t, feed[0].Liked)
	assert.True(t, feed[1].Liked)
	assert.Equal(t, int64(1), feed[1].Likes)
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	for _, s := range []domain.Sentence{
		{ID: "none", Date: "2024-01-01", Likes: 0},
		{ID: "tie-a", Date: "2024-01-01", Likes: 4},
		{ID: "top", Date: "2024-01-01", Likes: 9},
		{ID: "old", Date: "2023-12-31", Likes: 100},
		{ID: "tie-b", Date: "2024-01-01", Likes: 4},
		{ID: "low", Date: "2024-01-01", Likes: 1},
	} {
		require.NoError(t, f.sentences.Append(ctx, "p1", s))
	}

	top, err := f.svc.Leaderboard(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "top", top[0].ID)
	assert.Equal(t, "tie-a", top[1].ID)
	assert.Equal(t, "tie-b", top[2].ID)
	for i := range top {
		assert.Positive(t, top[i].Likes)
		if i > 0 {
			assert.LessOrEqual(t, top[i].Likes, top[i-1].Likes)
		}
	}
}

func TestLeaderboardSkipsUnliked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	require.NoError(t, f.sentences.Append(ctx, "p1", domain.Sentence{ID: "a", Date: "2024-01-01"}))
	require.NoError(t, f.sentences.Append(ctx, "p1", domain.Sentence{ID: "b", Date: "2024-01-01", Likes: 2}))

	top, err := f.svc.Leaderboard(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "b", top[0].ID)
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())
	base := f.now

	input := []domain.Sentence{
		{ID: "b2", Date: "2023-12-30", Timestamp: base.Add(-47 * time.Hour)},
		{ID: "c1", Date: "2024-01-01", Timestamp: base},
		{ID: "b1", Date: "2023-12-30", Timestamp: base.Add(-48 * time.Hour)},
		{ID: "a1", Date: "2023-12-31", Timestamp: base.Add(-24 * time.Hour)},
	}
	for _, s := range input {
		require.NoError(t, f.sentences.Append(ctx, "p1", s))
	}

	days, err := f.svc.Archive(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Equal(t, "2023-12-31", days[1].Date)
	assert.Equal(t, "2023-12-30", days[2].Date)
	require.Len(t, days[2].Sentences, 2)
	assert.Equal(t, "b1", days[2].Sentences[0].ID)
	assert.Equal(t, "b2", days[2].Sentences[1].ID)

	seen := 0
	for _, d := range days {
		seen += len(d.Sentences)
	}
	assert.Equal(t, len(input), seen)
}

func TestArchiveEmpty(t *testing.T) {
	f := newFixture(jan1(), cache.NewNoopBoardCache())
	days, err := f.svc.Archive(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestBoard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(jan1(), cache.NewNoopBoardCache())

	b, err := f.svc.Board(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", b.Today)
	assert.False(t, b.Submitted)
	assert.Len(t, b.Feed, 3)
	require.Len(t, b.Leaderboard, 3)
	assert.Equal(t, int64(15), b.Leaderboard[0].Likes)
	assert.Equal(t, f.now, b.BuiltAt)
}
