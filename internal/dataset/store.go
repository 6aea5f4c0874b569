// README: Route table loader backed by PostgreSQL.
package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// LoadRoutes reads the full route table in insertion order. COALESCE applies
// the neutral rating default on this path, mirroring the CSV loader.
func (s *PGStore) LoadRoutes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT transport_type, departure, arrival, price,
		       COALESCE(speed_rating, 5.0), COALESCE(comfort_rating, 5.0)
		FROM routes
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("dataset: query routes: %w", err)
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.TransportType, &r.Departure, &r.Arrival, &r.Price, &r.Speed, &r.Comfort); err != nil {
			return nil, fmt.Errorf("dataset: scan route: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: iterate routes: %w", err)
	}
	return routes, nil
}
