package playerrepo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/wdcheck/internal/domain"
)

var columns = []string{
	"player_id", "player_name", "player_surname", "player_email", "player_phone_number",
	"withdrawal_id", "withdrawal_creation_date", "withdrawal_status_update_date",
	"withdrawal_amount", "withdrawal_currency",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func testPlayer(i int, created time.Time) domain.Player {
	return domain.Player{
		PlayerID:                   fmt.Sprintf("P%d", 100000+i),
		PlayerName:                 fmt.Sprintf("TestName%d", i),
		PlayerSurname:              fmt.Sprintf("TestSurname%d", i),
		PlayerEmail:                fmt.Sprintf("player%d@example.com", i),
		PlayerPhoneNumber:          "+11234567890",
		WithdrawalID:               fmt.Sprintf("W%d", 200000+i),
		WithdrawalCreationDate:     created,
		WithdrawalStatusUpdateDate: created,
		WithdrawalAmount:           decimal.RequireFromString("125.50"),
		WithdrawalCurrency:         domain.EUR,
	}
}

func playerRows(players ...domain.Player) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns)
	for _, p := range players {
		rows.AddRow(
			p.PlayerID, p.PlayerName, p.PlayerSurname, p.PlayerEmail, p.PlayerPhoneNumber,
			p.WithdrawalID, p.WithdrawalCreationDate, p.WithdrawalStatusUpdateDate,
			p.WithdrawalAmount, string(p.WithdrawalCurrency),
		)
	}
	return rows
}

func TestRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	player := testPlayer(1, now)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    []domain.Player
	}{
		{
			name: "found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM player WHERE player_email = \$1`).
					WithArgs("player1@example.com").
					WillReturnRows(playerRows(player))
			},
			result: []domain.Player{player},
		},
		{
			name: "not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM player WHERE player_email = \$1`).
					WithArgs("player1@example.com").
					WillReturnRows(pgxmock.NewRows(columns))
			},
			result: nil,
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM player WHERE player_email = \$1`).
					WithArgs("player1@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "scan error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).
					AddRow("P1", "n", "s", "e", "p", "W1", "invalid_data", now, player.WithdrawalAmount, "EUR")
				mock.ExpectQuery(`FROM player WHERE player_email = \$1`).
					WithArgs("player1@example.com").
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByEmail(ctx, "player1@example.com")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListAllAndCreatedSince(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	players := []domain.Player{testPlayer(0, now), testPlayer(1, now.AddDate(0, 0, -1))}

	repo, mock := NewMock(t)
	mock.ExpectQuery(`FROM player$`).WillReturnRows(playerRows(players...))
	since := now.AddDate(0, 0, -3)
	mock.ExpectQuery(`FROM player WHERE withdrawal_creation_date >= \$1`).
		WithArgs(since).
		WillReturnRows(playerRows(players[0]))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, players, all)

	recent, err := repo.CreatedSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, players[:1], recent)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    int64
	}{
		{
			name: "counted",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM player`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(30)))
			},
			result: 30,
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM player`).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.Count(ctx)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindPlayerCreatedOn(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
		expectErr   bool
		result      string
	}{
		{
			name: "found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`DATE_TRUNC\('day', withdrawal_creation_date\) = \$1`).
					WithArgs(day).
					WillReturnRows(pgxmock.NewRows([]string{"player_id"}).AddRow("P100003"))
			},
			result: "P100003",
		},
		{
			name: "no player that day",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`DATE_TRUNC\('day', withdrawal_creation_date\) = \$1`).
					WithArgs(day).
					WillReturnRows(pgxmock.NewRows([]string{"player_id"}))
			},
			expectErr:   true,
			expectedErr: ErrNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`DATE_TRUNC\('day', withdrawal_creation_date\) = \$1`).
					WithArgs(day).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindPlayerCreatedOn(ctx, day)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_PlayerDayLookups(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local)
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM player\s+WHERE player_id = \$1`).
		WithArgs("P100003", day).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT withdrawal_id\s+FROM player\s+WHERE player_id = \$1`).
		WithArgs("P100003", day).
		WillReturnRows(pgxmock.NewRows([]string{"withdrawal_id"}).AddRow("W200003"))
	mock.ExpectQuery(`SELECT withdrawal_id\s+FROM player\s+WHERE player_id = \$1`).
		WithArgs("P100004", day).
		WillReturnError(errors.New("database error"))

	count, err := repo.CountByPlayerCreatedOn(ctx, "P100003", day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	ids, err := repo.WithdrawalIDsByPlayerCreatedOn(ctx, "P100003", day)
	require.NoError(t, err)
	assert.Equal(t, []string{"W200003"}, ids)

	_, err = repo.WithdrawalIDsByPlayerCreatedOn(ctx, "P100004", day)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DailyTotals(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    []domain.DailyTotal
	}{
		{
			name: "grouped by day",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"day", "transactions", "total_amount"}).
					AddRow(today, int64(4), decimal.RequireFromString("1024.10")).
					AddRow(yesterday, int64(2), decimal.RequireFromString("20.00"))
				mock.ExpectQuery(`GROUP BY day\s+ORDER BY day DESC`).WillReturnRows(rows)
			},
			result: []domain.DailyTotal{
				{Day: today, Transactions: 4, TotalAmount: decimal.RequireFromString("1024.10")},
				{Day: yesterday, Transactions: 2, TotalAmount: decimal.RequireFromString("20.00")},
			},
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`GROUP BY day\s+ORDER BY day DESC`).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.DailyTotals(ctx)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
