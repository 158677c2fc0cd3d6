package journal

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bf-tradehook/internal/model"
)

const recordTimeout = 3 * time.Second

// NewPool connects to Postgres and verifies the connection.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Store appends relay outcomes to the relay_events table. It is an audit
// trail only; the relay never reads it back.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the journal table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS relay_events (
			id BIGSERIAL PRIMARY KEY,
			kind TEXT NOT NULL,
			inst_id TEXT NOT NULL DEFAULT '',
			side TEXT NOT NULL DEFAULT '',
			size TEXT NOT NULL DEFAULT '',
			http_status INT NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Record inserts one outcome row with its own bounded timeout.
func (s *Store) Record(ctx context.Context, rec model.RelayRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	insertCtx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()
	_, err := s.pool.Exec(insertCtx, `
		INSERT INTO relay_events (kind, inst_id, side, size, http_status, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, string(rec.Kind), rec.InstID, rec.Side, rec.Size, rec.HTTPStatus, rec.Error, rec.CreatedAt)
	return err
}
