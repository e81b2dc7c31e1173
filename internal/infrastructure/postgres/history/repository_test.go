package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock "github.com/yujm08/MSAProjects-ezen/pkg/postgresql/mock"
	"go.uber.org/mock/gomock"
)

const testTable = "korean_history_stock"

func TestHistoryRepository_Insert(t *testing.T) {
	query := fmt.Sprintf(`INSERT INTO %s (instrument_code, instrument_name, exchange_code, closing_price, change_rate, date)
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
					record.ClosingPrice, record.ChangeRate, record.Date).Return(nil)
			},
			record: &Record{
				InstrumentCode: "005930",
				InstrumentName: "Samsung Electronics",
				ExchangeCode:   "KRX",
				ClosingPrice:   decimal.RequireFromString("71500"),
				Date:           time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
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
					record.ClosingPrice, record.ChangeRate, record.Date).Return(errors.New("error"))
			},
			record: &Record{
				InstrumentCode: "005930",
				InstrumentName: "Samsung Electronics",
				ExchangeCode:   "KRX",
				ClosingPrice:   decimal.RequireFromString("71500"),
				Date:           time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
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

func TestHistoryRepository_ExistsByCodeAndDate(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient)
		assertFn func(t *testing.T, exists bool, err error)
	}{
		{
			name: "exists",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient) {
				row := mock.NewMockRowInterface(ctrl)
				row.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*bool) = true
					return nil
				})
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "005930", date).Return(row)
			},
			assertFn: func(t *testing.T, exists bool, err error) {
				require.NoError(t, err)
				assert.True(t, exists)
			},
		},
		{
			name: "missing",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient) {
				row := mock.NewMockRowInterface(ctrl)
				row.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*bool) = false
					return nil
				})
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "005930", date).Return(row)
			},
			assertFn: func(t *testing.T, exists bool, err error) {
				require.NoError(t, err)
				assert.False(t, exists)
			},
		},
		{
			name: "error",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockPostgreSQLClient) {
				row := mock.NewMockRowInterface(ctrl)
				row.EXPECT().Scan(gomock.Any()).Return(errors.New("error"))
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "005930", date).Return(row)
			},
			assertFn: func(t *testing.T, exists bool, err error) {
				assert.Error(t, err)
				assert.False(t, exists)
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
			exists, err := repo.ExistsByCodeAndDate(context.Background(), "005930", date)
			tc.assertFn(t, exists, err)
		})
	}
}

func TestHistoryRepository_DeleteBefore(t *testing.T) {
	cutoff := time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC)

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
			client.EXPECT().Exec(gomock.Any(), gomock.Any(), cutoff).Return(tc.execErr)

			repo := NewRepository(client, testTable)
			err := repo.DeleteBefore(context.Background(), cutoff)
			tc.assertFn(t, err)
		})
	}
}
