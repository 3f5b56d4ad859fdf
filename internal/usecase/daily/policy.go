package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/sentence-chain/domain"
)

// sample 是首次访问时写入的示例内容
type sample struct {
	text   string
	author string
	ago    time.Duration
	likes  int64
}

var samples = []sample{
	{
		text:   "In a world where time moved backwards, Sarah woke up knowing exactly how her day would end.",
		author: "TimeKeeper",
		ago:    time.Hour,
		likes:  12,
	},
	{
		text:   "She rushed to the coffee shop, determined to prevent the spill that would ruin her favorite book.",
		author: "StoryWeaver",
		ago:    30 * time.Minute,
		likes:  8,
	},
	{
		text:   "But when she arrived, the barista looked at her with knowing eyes and said, 'You're early today.'",
		author: domain.DefaultAuthor,
		ago:    15 * time.Minute,
		likes:  15,
	},
}

type Policy struct {
	sentenceRepo domain.SentenceRepository
	gateRepo     domain.GateRepository
	clock        domain.Clock
}

var _ domain.DailyPolicy = (*Policy)(nil)

// NewPolicy will create a new daily policy object.
// "Today" follows the zone of the clock, so a visitor who changes time zone
// may see the gate reset early or late.
func NewPolicy(s domain.SentenceRepository, g domain.GateRepository, c domain.Clock) *Policy {
	return &Policy{
		sentenceRepo: s,
		gateRepo:     g,
		clock:        c,
	}
}

func (p *Policy) Today() string {
	return p.clock.Now().Format(domain.DateLayout)
}

func (p *Policy) Normalize(ctx context.Context, profile string) error {
	today := p.Today()

	all, present, err := p.sentenceRepo.All(ctx, profile)
	if err != nil {
		return fmt.Errorf("load sentences: %w", err)
	}

	if !present {
		logrus.Debugf("seeding sample story for profile %s", profile)
		return p.sentenceRepo.Seed(ctx, profile, p.samples(today))
	}

	for _, s := range all {
		if s.Date == today {
			return nil
		}
	}

	// nobody wrote today yet: a new day has started
	if err := p.gateRepo.Clear(ctx, profile); err != nil {
		return fmt.Errorf("clear submission gate: %w", err)
	}
	return nil
}

func (p *Policy) samples(today string) []domain.Sentence {
	now := p.clock.Now()
	res := make([]domain.Sentence, len(samples))
	for i, s := range samples {
		res[i] = domain.Sentence{
			ID:        uuid.NewString(),
			Text:      s.text,
			Author:    s.author,
			Timestamp: now.Add(-s.ago),
			Date:      today,
			Likes:     s.likes,
			Seed:      true,
		}
	}
	return res
}

func (p *Policy) HasSubmitted(ctx context.Context, profile string) (bool, error) {
	date, err := p.gateRepo.Get(ctx, profile)
	if err != nil {
		return false, err
	}
	return date == p.Today(), nil
}

func (p *Policy) MarkSubmitted(ctx context.Context, profile, date string) error {
	return p.gateRepo.Set(ctx, profile, date)
}
