package master

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yujm08/MSAProjects-ezen/pkg/postgresql"
)

// Repository reads the Korean instrument master table.
type Repository struct {
	client postgresql.PostgreSQLClient
}

// NewRepository creates a new instrument master repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

// FindAll returns every instrument in the master table.
func (r *Repository) FindAll(ctx context.Context) ([]*Instrument, error) {
	query := `SELECT instrument_code, instrument_name FROM instrument_master ORDER BY instrument_code`

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query instrument master: %w", err)
	}
	defer rows.Close()

	var instruments []*Instrument
	for rows.Next() {
		instrument := &Instrument{}
		if err := rows.Scan(&instrument.Code, &instrument.Name); err != nil {
			return nil, fmt.Errorf("failed to scan instrument: %w", err)
		}
		instruments = append(instruments, instrument)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return instruments, nil
}

// FindByCode returns the instrument with the given code, or nil when the
// master has no mapping for it.
func (r *Repository) FindByCode(ctx context.Context, code string) (*Instrument, error) {
	query := `SELECT instrument_code, instrument_name FROM instrument_master WHERE instrument_code = $1`

	instrument := &Instrument{}
	err := r.client.QueryRow(ctx, query, code).Scan(&instrument.Code, &instrument.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}

	return instrument, nil
}
