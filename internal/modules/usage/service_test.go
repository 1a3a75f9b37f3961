package usage

import (
	"context"
	"errors"
	"testing"
)

type fakeQuota struct {
	deducts  int
	ensures  int
	deductFn func(call int) error
	ensure   error
}

func (f *fakeQuota) Deduct(ctx context.Context, uid, feature string) error {
	f.deducts++
	return f.deductFn(f.deducts)
}

func (f *fakeQuota) Ensure(ctx context.Context, uid, feature string) error {
	f.ensures++
	return f.ensure
}

func TestUseDeductsDirectly(t *testing.T) {
	store := &fakeQuota{deductFn: func(int) error { return nil }}
	svc := NewService(store)

	if err := svc.Use(context.Background(), "u1", FeaturePlanner); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if store.deducts != 1 || store.ensures != 0 {
		t.Fatalf("deducts=%d ensures=%d, want 1/0", store.deducts, store.ensures)
	}
}

func TestUseProvisionsFirstTimeUser(t *testing.T) {
	store := &fakeQuota{deductFn: func(call int) error {
		if call == 1 {
			return ErrQuotaExhausted
		}
		return nil
	}}
	svc := NewService(store)

	if err := svc.Use(context.Background(), "u1", FeatureSupport); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if store.deducts != 2 || store.ensures != 1 {
		t.Fatalf("deducts=%d ensures=%d, want 2/1", store.deducts, store.ensures)
	}
}

func TestUseReportsRealExhaustion(t *testing.T) {
	store := &fakeQuota{deductFn: func(int) error { return ErrQuotaExhausted }}
	svc := NewService(store)

	err := svc.Use(context.Background(), "u1", FeatureResearch)
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("want ErrQuotaExhausted, got %v", err)
	}
	if store.deducts != 2 {
		t.Fatalf("deducts=%d, want exactly one retry", store.deducts)
	}
}
