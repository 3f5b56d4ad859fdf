package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/sentence-chain/domain"
)

type dailyCycleWorker struct {
	warmer   domain.BoardWarmer
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

var _ domain.DailyCycleWorker = (*dailyCycleWorker)(nil)

// NewDailyCycleWorker re-pulls the boards of profiles seen within idleTTL
// once per interval, so a rollover past midnight is picked up without a reload.
func NewDailyCycleWorker(w domain.BoardWarmer, interval, idleTTL time.Duration) *dailyCycleWorker {
	return &dailyCycleWorker{
		warmer:   w,
		interval: interval,
		idleTTL:  idleTTL,
		now:      time.Now,
		lastSeen: make(map[string]time.Time),
	}
}

func (d *dailyCycleWorker) Touch(profile string) {
	if profile == "" {
		return
	}
	d.mu.Lock()
	d.lastSeen[profile] = d.now()
	d.mu.Unlock()
}

func (d *dailyCycleWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.tick(ctx)
		case <-ctx.Done():
			logrus.Info("shuting down DailyCycleWorker")
			return
		}
	}
}

// active 清理过期的 profile，返回仍然活跃的
func (d *dailyCycleWorker) active() []string {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	res := make([]string, 0, len(d.lastSeen))
	for profile, seen := range d.lastSeen {
		if now.Sub(seen) > d.idleTTL {
			delete(d.lastSeen, profile)
			continue
		}
		res = append(res, profile)
	}
	return res
}

func (d *dailyCycleWorker) tick(ctx context.Context) {
	for _, profile := range d.active() {
		if ctx.Err() != nil {
			return
		}
		if err := d.warmer.Warm(ctx, profile); err != nil {
			logrus.Errorf("failed to warm board, profile: %s, err: %v", profile, err)
		}
	}
}
