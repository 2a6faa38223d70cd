package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/wdcheck/internal/domain"
)

const (
	playerIDBase     = 100000
	withdrawalIDBase = 200000
	maxDaysAgo       = 7
)

var (
	minAmount   = decimal.NewFromInt(10)
	amountRange = decimal.NewFromInt(990)
)

// Generator produces synthetic player rows spread over the last week.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewSeededGenerator is deterministic for a given seed and clock.
func NewSeededGenerator(seed int64, now func() time.Time) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Row builds the i-th fixture row. The status update is strictly more recent than the creation
// unless the withdrawal was created today, in which case both are today.
func (g *Generator) Row(i int) domain.Player {
	creationDaysAgo := g.rnd.Intn(maxDaysAgo)
	updateDaysAgo := 0
	if creationDaysAgo > 0 {
		updateDaysAgo = g.rnd.Intn(creationDaysAgo)
	}

	now := g.now()
	amount := decimal.NewFromFloat(g.rnd.Float64()).Mul(amountRange).Add(minAmount).Round(2)

	return domain.Player{
		PlayerID:                   fmt.Sprintf("P%d", playerIDBase+i),
		PlayerName:                 fmt.Sprintf("TestName%d", i),
		PlayerSurname:              fmt.Sprintf("TestSurname%d", i),
		PlayerEmail:                fmt.Sprintf("player%d@example.com", i),
		PlayerPhoneNumber:          fmt.Sprintf("+1%d", 1000000000+g.rnd.Int63n(9000000000)),
		WithdrawalID:               fmt.Sprintf("W%d", withdrawalIDBase+i),
		WithdrawalCreationDate:     now.AddDate(0, 0, -creationDaysAgo),
		WithdrawalStatusUpdateDate: now.AddDate(0, 0, -updateDaysAgo),
		WithdrawalAmount:           amount,
		WithdrawalCurrency:         domain.Currencies[g.rnd.Intn(len(domain.Currencies))],
	}
}
