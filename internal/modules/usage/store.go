// README: Generation quota persistence; atomic deduct with lazy monthly reset.
package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles gen_usage persistence.
//
// Schema:
//
//	CREATE TABLE gen_usage (
//	    uid               TEXT NOT NULL,
//	    feature           TEXT NOT NULL,
//	    credits_remaining INT  NOT NULL,
//	    period            TEXT NOT NULL,
//	    PRIMARY KEY (uid, feature)
//	);
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Deduct atomically checks the monthly quota for (uid, feature) and takes one
// credit. The counter resets to DefaultCredits when the stored period is
// behind the current month. Returns ErrQuotaExhausted when 0 rows are updated
// (quota gone or row absent).
func (s *Store) Deduct(ctx context.Context, uid, feature string) error {
	period := time.Now().UTC().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE gen_usage SET
			credits_remaining = CASE WHEN period != $1 THEN $2 - 1 ELSE credits_remaining - 1 END,
			period = $1
		WHERE uid = $3 AND feature = $4 AND (period < $1 OR credits_remaining > 0)
	`, period, DefaultCredits, uid, feature)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// Ensure inserts a fresh quota row for (uid, feature) with the default
// allowance; an existing row is left alone.
func (s *Store) Ensure(ctx context.Context, uid, feature string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO gen_usage (uid, feature, credits_remaining, period)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (uid, feature) DO NOTHING
	`, uid, feature, DefaultCredits, time.Now().UTC().Format("2006-01"))
	return err
}
