package coupon

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageStore persists coupon redemptions.
type UsageStore interface {
	Record(ctx context.Context, u Usage) error
	Count(ctx context.Context, code string) (int, error)
}

// Store handles coupon_usages persistence.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ctx context.Context, u Usage) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO coupon_usages (id, code, used_at, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Code, u.UsedAt, u.IP, u.UserAgent)
	return err
}

// Count returns how many times code has been redeemed.
func (s *Store) Count(ctx context.Context, code string) (int, error) {
	if s.db == nil {
		return 0, ErrStoreUnavailable
	}
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM coupon_usages WHERE code = $1`, code).Scan(&n)
	return n, err
}
