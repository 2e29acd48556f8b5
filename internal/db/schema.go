package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS workout
(
    id         BIGSERIAL PRIMARY KEY,
    date       TIMESTAMPTZ      NOT NULL DEFAULT now(),
    workout    VARCHAR          NOT NULL,
    exercise   VARCHAR          NOT NULL,
    weight     DOUBLE PRECISION NOT NULL,
    reps       INTEGER,
    created_at TIMESTAMPTZ      NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ      NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_workout_date ON workout USING btree (date);
`

// EnsureSchema creates the workout table and its indexes when missing.
// Safe to run on every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
