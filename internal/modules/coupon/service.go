// README: Coupon validation (rate limited per IP) and best-effort usage registration.
package coupon

import (
	"context"
	"time"

	"github.com/google/uuid"

	"transfer/internal/logging"
)

type Service struct {
	limiter Limiter
	usages  UsageStore
	log     logging.Logger
	now     func() time.Time
}

// NewService accepts nil limiter or store; the matching feature is then skipped.
func NewService(limiter Limiter, usages UsageStore, log logging.Logger) *Service {
	if log == nil {
		log = logging.Noop()
	}
	return &Service{limiter: limiter, usages: usages, log: log, now: time.Now}
}

// Validate checks code for the caller at ip. A limiter failure allows the
// request; the limit only blocks when it can be evaluated.
func (s *Service) Validate(ctx context.Context, ip, code string) (Result, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, ip)
		if err != nil {
			s.log.Warn(ctx, "coupon rate limit check failed, allowing", logging.String("ip", ip), logging.Err(err))
		} else if !allowed {
			return Result{Valid: false, Message: "Muitas tentativas. Tente novamente mais tarde."}, ErrRateLimited
		}
	}

	normalized := NormalizeCode(code)
	if normalized == "" {
		return Result{Valid: false, Message: "Informe o código do cupom."}, ErrEmptyCode
	}
	c, ok := Catalog[normalized]
	if !ok {
		return Result{Valid: false, Message: "Cupom inválido."}, nil
	}
	if !c.Active {
		return Result{Valid: false, Message: "Cupom inativo."}, nil
	}
	if c.expired(s.now()) {
		return Result{Valid: false, Message: "Cupom expirado."}, nil
	}
	if c.MaxUses > 0 && s.usages != nil {
		used, err := s.usages.Count(ctx, c.Code)
		if err != nil {
			s.log.Warn(ctx, "coupon usage count failed", logging.String("code", c.Code), logging.Err(err))
		} else if used >= c.MaxUses {
			return Result{Valid: false, Message: "Cupom esgotado."}, nil
		}
	}
	return Result{Valid: true, Message: "Cupom aplicado.", Coupon: &c}, nil
}

// RecordUsage stores a redemption. Failures are logged and returned; callers
// treat them as non-fatal.
func (s *Service) RecordUsage(ctx context.Context, code, ip, userAgent string) (Usage, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return Usage{}, ErrEmptyCode
	}
	u := Usage{
		ID:        uuid.NewString(),
		Code:      normalized,
		UsedAt:    s.now().UTC(),
		IP:        ip,
		UserAgent: userAgent,
	}
	if s.usages == nil {
		return u, ErrStoreUnavailable
	}
	if err := s.usages.Record(ctx, u); err != nil {
		s.log.Warn(ctx, "coupon usage not recorded", logging.String("code", normalized), logging.Err(err))
		return u, err
	}
	return u, nil
}
