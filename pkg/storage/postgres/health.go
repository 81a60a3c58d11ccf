package postgres

import (
	"context"
	"fmt"
)

// Ping checks the connection pool, or the underlying connection when running
// inside a transaction.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool != nil {
		if err := p.Pool.Ping(ctx); err != nil {
			return fmt.Errorf("could not ping postgres: %w", err)
		}

		return nil
	}

	var one int
	if err := p.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

// JobCounts groups River jobs by state.
func (p *PgSQL) JobCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := p.DB.QueryContext(ctx, "SELECT state::text, COUNT(*) FROM river_job GROUP BY state")
	if err != nil {
		return nil, fmt.Errorf("could not count jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			state string
			count int64
		)
		if err := rows.Scan(&state, &count); err != nil {
			return nil, fmt.Errorf("could not scan job count: %w", err)
		}
		counts[state] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate job counts: %w", err)
	}

	return counts, nil
}
