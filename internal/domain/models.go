package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
)

var Currencies = []Currency{USD, EUR, GBP, JPY, CAD}

// Player is one row of the player fixture table. Each row carries a single withdrawal.
type Player struct {
	PlayerID                   string          `db:"player_id"`
	PlayerName                 string          `db:"player_name"`
	PlayerSurname              string          `db:"player_surname"`
	PlayerEmail                string          `db:"player_email"`
	PlayerPhoneNumber          string          `db:"player_phone_number"`
	WithdrawalID               string          `db:"withdrawal_id"`
	WithdrawalCreationDate     time.Time       `db:"withdrawal_creation_date"`
	WithdrawalStatusUpdateDate time.Time       `db:"withdrawal_status_update_date"`
	WithdrawalAmount           decimal.Decimal `db:"withdrawal_amount"`
	WithdrawalCurrency         Currency        `db:"withdrawal_currency"`
}

type DailyTotal struct {
	Day          time.Time       `db:"day"`
	Transactions int64           `db:"transactions"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
}
