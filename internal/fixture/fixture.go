package fixture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wdcheck/internal/pg"
)

const (
	// SetupTimeout is the budget for reaching the database and seeding it.
	SetupTimeout = 30 * time.Second

	DefaultRecords = 20
)

var ErrNoPlayerTable = errors.New("player table does not exist")

// Helper owns the fixture database handle for one test run.
type Helper struct {
	db        pg.Database
	gen       *Generator
	closeOnce sync.Once
}

func New(db pg.Database) *Helper {
	return NewWithGenerator(db, NewGenerator())
}

func NewWithGenerator(db pg.Database, gen *Generator) *Helper {
	return &Helper{
		db:  db,
		gen: gen,
	}
}

func (h *Helper) Pool() pg.Database {
	return h.db
}

func (h *Helper) ClearPlayerTable(ctx context.Context) error {
	query := `TRUNCATE TABLE player RESTART IDENTITY CASCADE`
	if _, err := h.db.Exec(ctx, query); err != nil {
		zap.L().Error("error clearing player table", zap.Error(err))
		return classify(err)
	}
	zap.L().Info("Player table cleared")
	return nil
}

// InsertTestData inserts n generated rows one by one. There is no surrounding transaction, so an
// error leaves the rows inserted before it in place.
func (h *Helper) InsertTestData(ctx context.Context, n int) error {
	query := `
		INSERT INTO player (
			player_id,
			player_name,
			player_surname,
			player_email,
			player_phone_number,
			withdrawal_id,
			withdrawal_creation_date,
			withdrawal_status_update_date,
			withdrawal_amount,
			withdrawal_currency
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for i := 0; i < n; i++ {
		p := h.gen.Row(i)
		_, err := h.db.Exec(ctx, query,
			p.PlayerID,
			p.PlayerName,
			p.PlayerSurname,
			p.PlayerEmail,
			p.PlayerPhoneNumber,
			p.WithdrawalID,
			p.WithdrawalCreationDate,
			p.WithdrawalStatusUpdateDate,
			p.WithdrawalAmount,
			string(p.WithdrawalCurrency),
		)
		if err != nil {
			zap.L().Error("error inserting test data", zap.Int("inserted", i), zap.Error(err))
			return fmt.Errorf("insert row %d: %w", i, classify(err))
		}
	}

	zap.L().Info("test records inserted", zap.Int("count", n))
	return nil
}

// Close releases the pool. Only the first call has an effect.
func (h *Helper) Close() {
	h.closeOnce.Do(func() {
		h.db.Close()
		zap.L().Info("Database connection closed")
	})
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: %w", ErrNoPlayerTable, err)
	}
	return err
}
