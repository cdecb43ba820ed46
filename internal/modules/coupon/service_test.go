package coupon

import (
	"context"
	"errors"
	"testing"
	"time"

	"transfer/internal/types"
)

type stubLimiter struct {
	allow bool
	err   error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

type memoryUsages struct {
	records  []Usage
	err      error
	countErr error
}

func (m *memoryUsages) Record(_ context.Context, u Usage) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, u)
	return nil
}

func (m *memoryUsages) Count(_ context.Context, code string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	n := 0
	for _, r := range m.records {
		if r.Code == code {
			n++
		}
	}
	return n, nil
}

func TestService_Validate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		code      string
		wantValid bool
		wantErr   error
	}{
		{name: "valid normalized", code: "  bemvindo10 ", wantValid: true},
		{name: "unknown", code: "NAOEXISTE", wantValid: false},
		{name: "inactive", code: "parceiro", wantValid: false},
		{name: "expired", code: "VERAO2025", wantValid: false},
		{name: "empty", code: "   ", wantValid: false, wantErr: ErrEmptyCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(stubLimiter{allow: true}, &memoryUsages{}, nil)
			svc.now = func() time.Time { return fixedNow }
			res, err := svc.Validate(context.Background(), "ip", tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if res.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v (%s)", res.Valid, tt.wantValid, res.Message)
			}
			if res.Message == "" {
				t.Error("message is empty")
			}
			if tt.wantValid && (res.Coupon == nil || res.Coupon.Code != NormalizeCode(tt.code)) {
				t.Errorf("coupon = %+v", res.Coupon)
			}
		})
	}
}

func TestService_RateLimited(t *testing.T) {
	svc := NewService(stubLimiter{allow: false}, nil, nil)
	res, err := svc.Validate(context.Background(), "ip", "BEMVINDO10")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	if res.Valid {
		t.Error("rate limited result must be invalid")
	}
}

func TestService_LimiterFailureAllows(t *testing.T) {
	svc := NewService(stubLimiter{err: errors.New("connection refused")}, nil, nil)
	res, err := svc.Validate(context.Background(), "ip", "BEMVINDO10")
	if err != nil || !res.Valid {
		t.Fatalf("got %+v, %v; want valid", res, err)
	}
}

func TestService_MaxUses(t *testing.T) {
	usages := &memoryUsages{}
	for i := 0; i < 100; i++ {
		usages.records = append(usages.records, Usage{Code: "BLINDADO20"})
	}
	svc := NewService(nil, usages, nil)
	res, _ := svc.Validate(context.Background(), "ip", "blindado20")
	if res.Valid {
		t.Error("exhausted coupon accepted")
	}

	usages.countErr = errors.New("db down")
	res, _ = svc.Validate(context.Background(), "ip", "blindado20")
	if !res.Valid {
		t.Error("count failure should not block validation")
	}
}

func TestService_RecordUsage(t *testing.T) {
	usages := &memoryUsages{}
	svc := NewService(nil, usages, nil)
	u, err := svc.RecordUsage(context.Background(), " aeroporto15", "203.0.113.7", "Mozilla/5.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Code != "AEROPORTO15" || u.ID == "" || u.UsedAt.IsZero() {
		t.Errorf("usage = %+v", u)
	}
	if len(usages.records) != 1 {
		t.Errorf("records = %d, want 1", len(usages.records))
	}

	usages.err = errors.New("insert failed")
	if _, err := svc.RecordUsage(context.Background(), "AEROPORTO15", "ip", "ua"); err == nil {
		t.Error("expected store error")
	}
	if _, err := NewService(nil, nil, nil).RecordUsage(context.Background(), "X", "ip", "ua"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
	if _, err := svc.RecordUsage(context.Background(), "", "ip", "ua"); !errors.Is(err, ErrEmptyCode) {
		t.Errorf("err = %v, want ErrEmptyCode", err)
	}
}

func TestCoupon_Apply(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		price  types.Money
		want   types.Money
	}{
		{name: "percent", coupon: Catalog["BEMVINDO10"], price: types.BRL(240), want: types.BRL(216)},
		{name: "below minimum unchanged", coupon: Catalog["EXECUTIVO50"], price: types.BRL(320), want: types.BRL(320)},
		{name: "fixed amount", coupon: Catalog["EXECUTIVO50"], price: types.BRL(450), want: types.BRL(400)},
		{name: "never negative", coupon: Coupon{DiscountAmount: types.BRL(500)}, price: types.BRL(180), want: types.BRL(0)},
		{name: "airport percent", coupon: Catalog["AEROPORTO15"], price: types.BRL(240), want: types.BRL(204)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.Apply(tt.price); got != tt.want {
				t.Errorf("Apply(%s) = %s, want %s", tt.price, got, tt.want)
			}
		})
	}
}

func TestStore_NilPool(t *testing.T) {
	s := NewStore(nil)
	if err := s.Record(context.Background(), Usage{}); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Record err = %v", err)
	}
	if _, err := s.Count(context.Background(), "X"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Count err = %v", err)
	}
}
