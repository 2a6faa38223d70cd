package playerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wdcheck/internal/domain"
	"github.com/GlebRadaev/wdcheck/internal/pg"
)

var ErrNotFound = errors.New("player not found")

const playerColumns = `
	player_id, player_name, player_surname, player_email, player_phone_number,
	withdrawal_id, withdrawal_creation_date, withdrawal_status_update_date,
	withdrawal_amount, withdrawal_currency
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Player, error) {
	query := `SELECT` + playerColumns + `FROM player`
	return r.queryPlayers(ctx, query)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) ([]domain.Player, error) {
	query := `SELECT` + playerColumns + `FROM player WHERE player_email = $1`
	return r.queryPlayers(ctx, query, email)
}

// CreatedSince returns withdrawals created at or after since.
func (r *Repository) CreatedSince(ctx context.Context, since time.Time) ([]domain.Player, error) {
	query := `SELECT` + playerColumns + `FROM player WHERE withdrawal_creation_date >= $1`
	return r.queryPlayers(ctx, query, since)
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM player`).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count players", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindPlayerCreatedOn returns the id of any player with a withdrawal created on day. day must be
// a start of day in the database session time zone.
func (r *Repository) FindPlayerCreatedOn(ctx context.Context, day time.Time) (string, error) {
	query := `
		SELECT player_id
		FROM player
		WHERE DATE_TRUNC('day', withdrawal_creation_date) = $1
		LIMIT 1
	`
	var playerID string
	err := r.db.QueryRow(ctx, query, day).Scan(&playerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		zap.L().Error("failed to find player by creation day", zap.Error(err))
		return "", err
	}
	return playerID, nil
}

func (r *Repository) CountByPlayerCreatedOn(ctx context.Context, playerID string, day time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM player
		WHERE player_id = $1
		AND DATE_TRUNC('day', withdrawal_creation_date) = $2
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, playerID, day).Scan(&count); err != nil {
		zap.L().Error("failed to count player withdrawals", zap.String("playerID", playerID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) WithdrawalIDsByPlayerCreatedOn(ctx context.Context, playerID string, day time.Time) ([]string, error) {
	query := `
		SELECT withdrawal_id
		FROM player
		WHERE player_id = $1
		AND DATE_TRUNC('day', withdrawal_creation_date) = $2
	`
	rows, err := r.db.Query(ctx, query, playerID, day)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal ids", zap.String("playerID", playerID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan withdrawal id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) DailyTotals(ctx context.Context) ([]domain.DailyTotal, error) {
	query := `
		SELECT
			DATE_TRUNC('day', withdrawal_creation_date) AS day,
			COUNT(*) AS transactions,
			SUM(withdrawal_amount) AS total_amount
		FROM player
		GROUP BY day
		ORDER BY day DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch daily totals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.DailyTotal
	for rows.Next() {
		var dt domain.DailyTotal
		if err := rows.Scan(&dt.Day, &dt.Transactions, &dt.TotalAmount); err != nil {
			zap.L().Error("failed to scan daily total", zap.Error(err))
			return nil, err
		}
		totals = append(totals, dt)
	}
	return totals, rows.Err()
}

func (r *Repository) queryPlayers(ctx context.Context, query string, args ...any) ([]domain.Player, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch players", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		var currency string
		err := rows.Scan(
			&p.PlayerID,
			&p.PlayerName,
			&p.PlayerSurname,
			&p.PlayerEmail,
			&p.PlayerPhoneNumber,
			&p.WithdrawalID,
			&p.WithdrawalCreationDate,
			&p.WithdrawalStatusUpdateDate,
			&p.WithdrawalAmount,
			&currency,
		)
		if err != nil {
			zap.L().Error("failed to scan player row", zap.Error(err))
			return nil, err
		}
		p.WithdrawalCurrency = domain.Currency(currency)
		players = append(players, p)
	}
	return players, rows.Err()
}
