package usage

import (
	"context"
	"errors"
)

// Quota is the deduct-or-provision surface handlers gate requests on.
type Quota interface {
	Deduct(ctx context.Context, uid, feature string) error
	Ensure(ctx context.Context, uid, feature string) error
}

// Service enforces per-feature monthly generation quotas.
type Service struct {
	store Quota
}

func NewService(store Quota) *Service {
	return &Service{store: store}
}

// Use takes one credit from uid's quota for the feature. A first-time user
// has no row yet, so on exhaustion we provision the default allowance and
// retry once; a second exhaustion is the real thing.
func (s *Service) Use(ctx context.Context, uid, feature string) error {
	err := s.store.Deduct(ctx, uid, feature)
	if !errors.Is(err, ErrQuotaExhausted) {
		return err
	}
	if err := s.store.Ensure(ctx, uid, feature); err != nil {
		return err
	}
	return s.store.Deduct(ctx, uid, feature)
}
