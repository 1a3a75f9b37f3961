// README: Support ticket persistence.
package support

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles support_tickets persistence.
//
// Schema:
//
//	CREATE TABLE support_tickets (
//	    id             TEXT PRIMARY KEY,
//	    message        TEXT NOT NULL,
//	    classification JSONB NOT NULL,
//	    response       TEXT NOT NULL,
//	    approved       BOOLEAN NOT NULL,
//	    feedback       TEXT NOT NULL DEFAULT '',
//	    created_at     TIMESTAMPTZ NOT NULL
//	);
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, t Ticket) error {
	cls, err := json.Marshal(t.Classification)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO support_tickets (id, message, classification, response, approved, feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.Message, cls, t.Response, t.Approved, t.Feedback, t.CreatedAt)
	return err
}

// Get returns one ticket by id.
func (s *Store) Get(ctx context.Context, id string) (Ticket, error) {
	var (
		t   Ticket
		cls []byte
	)
	row := s.db.QueryRow(ctx, `
		SELECT id, message, classification, response, approved, feedback, created_at
		FROM support_tickets WHERE id = $1
	`, id)
	if err := row.Scan(&t.ID, &t.Message, &cls, &t.Response, &t.Approved, &t.Feedback, &t.CreatedAt); err != nil {
		return Ticket{}, err
	}
	if err := json.Unmarshal(cls, &t.Classification); err != nil {
		return Ticket{}, err
	}
	return t, nil
}
