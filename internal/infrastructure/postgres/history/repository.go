package history

import (
	"context"
	"fmt"
	"time"

	"github.com/yujm08/MSAProjects-ezen/pkg/postgresql"
)

// Repository persists per-date closing values for one asset class.
type Repository struct {
	client postgresql.PostgreSQLClient
	table  string
}

// NewRepository creates a history repository bound to the given table.
func NewRepository(client postgresql.PostgreSQLClient, table string) *Repository {
	return &Repository{
		client: client,
		table:  table,
	}
}

// Insert stores one closing record.
func (r *Repository) Insert(ctx context.Context, record *Record) error {
	query := fmt.Sprintf(`INSERT INTO %s (instrument_code, instrument_name, exchange_code, closing_price, change_rate, date)
			  VALUES ($1, $2, $3, $4, $5, $6)`, r.table)

	err := r.client.Exec(ctx, query,
		record.InstrumentCode, record.InstrumentName, record.ExchangeCode,
		record.ClosingPrice, record.ChangeRate, record.Date)

	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	return nil
}

// ExistsByCodeAndDate reports whether a closing record already exists for
// the (instrument, date) pair.
func (r *Repository) ExistsByCodeAndDate(ctx context.Context, code string, date time.Time) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE instrument_code = $1 AND date = $2)`, r.table)

	var exists bool
	err := r.client.QueryRow(ctx, query, code, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check history record: %w", err)
	}

	return exists, nil
}

// DeleteBefore removes every closing record older than the given date.
func (r *Repository) DeleteBefore(ctx context.Context, date time.Time) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE date < $1`, r.table)

	if err := r.client.Exec(ctx, query, date); err != nil {
		return fmt.Errorf("failed to delete history records: %w", err)
	}

	return nil
}
