package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yujm08/MSAProjects-ezen/pkg/postgresql"
)

// Repository persists daily observation records for one asset class.
type Repository struct {
	client postgresql.PostgreSQLClient
	table  string
}

// NewRepository creates a daily repository bound to the given table.
func NewRepository(client postgresql.PostgreSQLClient, table string) *Repository {
	return &Repository{
		client: client,
		table:  table,
	}
}

// Insert stores one observation row.
func (r *Repository) Insert(ctx context.Context, record *Record) error {
	query := fmt.Sprintf(`INSERT INTO %s (instrument_code, instrument_name, exchange_code, price, change_rate, observed_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`, r.table)

	err := r.client.Exec(ctx, query,
		record.InstrumentCode, record.InstrumentName, record.ExchangeCode,
		record.Price, record.ChangeRate, record.Timestamp)

	if err != nil {
		return fmt.Errorf("failed to insert daily record: %w", err)
	}

	return nil
}

// FindLatestByCode returns the most recent observation for the instrument,
// or nil when none exists.
func (r *Repository) FindLatestByCode(ctx context.Context, code string) (*Record, error) {
	query := fmt.Sprintf(`SELECT id, instrument_code, instrument_name, exchange_code, price, change_rate, observed_at
			  FROM %s
			  WHERE instrument_code = $1
			  ORDER BY observed_at DESC
			  LIMIT 1`, r.table)

	record := &Record{}
	err := r.client.QueryRow(ctx, query, code).Scan(
		&record.ID, &record.InstrumentCode, &record.InstrumentName, &record.ExchangeCode,
		&record.Price, &record.ChangeRate, &record.Timestamp)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest daily record: %w", err)
	}

	return record, nil
}

// FindByCodeBetween returns the instrument's observations in [start, end).
func (r *Repository) FindByCodeBetween(ctx context.Context, code string, start, end time.Time) ([]*Record, error) {
	query := fmt.Sprintf(`SELECT id, instrument_code, instrument_name, exchange_code, price, change_rate, observed_at
			  FROM %s
			  WHERE instrument_code = $1 AND observed_at >= $2 AND observed_at < $3
			  ORDER BY observed_at DESC`, r.table)

	rows, err := r.client.Query(ctx, query, code, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record := &Record{}
		err := rows.Scan(&record.ID, &record.InstrumentCode, &record.InstrumentName, &record.ExchangeCode,
			&record.Price, &record.ChangeRate, &record.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// DistinctCodesBetween returns every instrument code with at least one
// observation in [start, end).
func (r *Repository) DistinctCodesBetween(ctx context.Context, start, end time.Time) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT instrument_code FROM %s
			  WHERE observed_at >= $1 AND observed_at < $2`, r.table)

	rows, err := r.client.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan code: %w", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return codes, nil
}

// DeleteByCodeBetween removes the instrument's observations in [start, end).
func (r *Repository) DeleteByCodeBetween(ctx context.Context, code string, start, end time.Time) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE instrument_code = $1 AND observed_at >= $2 AND observed_at < $3`, r.table)

	if err := r.client.Exec(ctx, query, code, start, end); err != nil {
		return fmt.Errorf("failed to delete daily records: %w", err)
	}

	return nil
}
