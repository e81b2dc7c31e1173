package daily

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock "github.com/yujm08/MSAProjects-ezen/pkg/postgresql/mock"
	"go.uber.org/mock/gomock"
)

const testTable = "korean_daily_stock"

func TestDailyRepository_Insert(t *testing.T) {
	query := fmt.Sprintf(`INSERT INTO %s (instrument_code, instrument_name, exchange_code, price, change_rate, observed_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`, testTable)

	testCases := []struct {
		name     string
		mockFn   func(record *Record, mock *mock.MockPostgreSQLClient)
		assertFn func(t *testing.T, err error)
		record   *Record
	}{
		{
			name: "success",
			mockFn: func(record *Record, mock *mock.MockPostgreSQLClient) {
				mock.EXPECT().Exec(gomock.Any(), query,
					record.InstrumentCode, record.InstrumentName, record.ExchangeCode,
					record.Price, record.ChangeRate, record.Timestamp).Return(nil)
			},
			record: &Record{
				InstrumentCode: "005930",
				InstrumentName: "Samsung Electronics",
				ExchangeCode:   "KRX",
				Price:          decimal.RequireFromString("71000"),
				Timestamp:      time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(record *Record, mock *mock.MockPostgreSQLClient) {
				mock.EXPECT().Exec(gomock.Any(), query,
					record.InstrumentCode, record.InstrumentName, record.ExchangeCode,
					record.Price, record.ChangeRate, record.Timestamp).Return(errors.New("error"))
			},
			record: &Record{
				InstrumentCode: "005930",
				InstrumentName: "Samsung Electronics",
				ExchangeCode:   "KRX",
				Price:          decimal.RequireFromString("71000"),
				Timestamp:      time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgreSQLClient(ctrl)
			tc.mockFn(tc.record, client)

			repo := NewRepository(client, testTable)
			err := repo.Insert(context.Background(), tc.record)
			tc.assertFn(t, err)
		})
	}
}

func TestDailyRepository_FindLatestByCode(t *testing.T) {
	observedAt := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient)
		assertFn func(t *testing.T, record *Record, err error)
	}{
		{
			name: "success",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient) {
				row := mock.NewMockRowInterface(ctrl)
				row.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*int64) = 7
					*dest[1].(*string) = "005930"
					*dest[2].(*string) = "Samsung Electronics"
					*dest[3].(*string) = "KRX"
					*dest[4].(*decimal.Decimal) = decimal.RequireFromString("71000")
					*dest[6].(*time.Time) = observedAt
					return nil
				})
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "005930").Return(row)
			},
			assertFn: func(t *testing.T, record *Record, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)
				assert.Equal(t, "005930", record.InstrumentCode)
				assert.True(t, record.Price.Equal(decimal.RequireFromString("71000")))
				assert.Equal(t, observedAt, record.Timestamp)
			},
		},
		{
			name: "no rows returns nil",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient) {
				row := mock.NewMockRowInterface(ctrl)
				row.EXPECT().Scan(gomock.Any()).Return(pgx.ErrNoRows)
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "005930").Return(row)
			},
			assertFn: func(t *testing.T, record *Record, err error) {
				require.NoError(t, err)
				assert.Nil(t, record)
			},
		},
		{
			name: "error",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient) {
				row := mock.NewMockRowInterface(ctrl)
				row.EXPECT().Scan(gomock.Any()).Return(errors.New("error"))
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "005930").Return(row)
			},
			assertFn: func(t *testing.T, record *Record, err error) {
				assert.Error(t, err)
				assert.Nil(t, record)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgreSQLClient(ctrl)
			tc.mockFn(ctrl, client)

			repo := NewRepository(client, testTable)
			record, err := repo.FindLatestByCode(context.Background(), "005930")
			tc.assertFn(t, record, err)
		})
	}
}

func TestDailyRepository_DistinctCodesBetween(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := mock.NewMockRowsInterface(ctrl)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*string) = "005930"
			return nil
		}),
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*string) = "000660"
			return nil
		}),
		rows.EXPECT().Next().Return(false),
	)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	client := mock.NewMockPostgreSQLClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), start, end).Return(rows, nil)

	repo := NewRepository(client, testTable)
	codes, err := repo.DistinctCodesBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, []string{"005930", "000660"}, codes)
}

func TestDailyRepository_FindByCodeBetween(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := mock.NewMockRowsInterface(ctrl)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*int64) = 2
			*dest[1].(*string) = "005930"
			*dest[4].(*decimal.Decimal) = decimal.RequireFromString("71500")
			*dest[6].(*time.Time) = start.Add(15 * time.Hour)
			return nil
		}),
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*int64) = 1
			*dest[1].(*string) = "005930"
			*dest[4].(*decimal.Decimal) = decimal.RequireFromString("71000")
			*dest[6].(*time.Time) = start.Add(10 * time.Hour)
			return nil
		}),
		rows.EXPECT().Next().Return(false),
	)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	client := mock.NewMockPostgreSQLClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "005930", start, end).Return(rows, nil)

	repo := NewRepository(client, testTable)
	records, err := repo.FindByCodeBetween(context.Background(), "005930", start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Price.Equal(decimal.RequireFromString("71500")))
	assert.True(t, records[1].Price.Equal(decimal.RequireFromString("71000")))
}

func TestDailyRepository_DeleteByCodeBetween(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	testCases := []struct {
		name     string
		execErr  error
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "error",
			execErr: errors.New("error"),
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgreSQLClient(ctrl)
			client.EXPECT().Exec(gomock.Any(), gomock.Any(), "005930", start, end).Return(tc.execErr)

			repo := NewRepository(client, testTable)
			err := repo.DeleteByCodeBetween(context.Background(), "005930", start, end)
			tc.assertFn(t, err)
		})
	}
}
