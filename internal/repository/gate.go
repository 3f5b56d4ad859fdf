package repository

import (
	"context"
	"errors"

	"github.com/Guyuepp/sentence-chain/domain"
)

type gateRepository struct {
	store domain.Store
}

var _ domain.GateRepository = (*gateRepository)(nil)

func NewGateRepository(store domain.Store) *gateRepository {
	return &gateRepository{store}
}

func (r *gateRepository) Get(ctx context.Context, profile string) (string, error) {
	raw, err := r.store.Get(ctx, profile, domain.KeySubmissionDate)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *gateRepository) Set(ctx context.Context, profile, date string) error {
	return r.store.Set(ctx, profile, domain.KeySubmissionDate, []byte(date))
}

func (r *gateRepository) Clear(ctx context.Context, profile string) error {
	return r.store.Del(ctx, profile, domain.KeySubmissionDate)
}
