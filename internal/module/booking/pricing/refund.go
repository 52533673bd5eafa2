package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

type RefundBand struct {
	MinDays int
	Percent decimal.Decimal
}

// RefundPolicy bands are ordered by MinDays, largest first.
type RefundPolicy []RefundBand

var DefaultRefundPolicy = RefundPolicy{
	{MinDays: 7, Percent: decimal.NewFromInt(90)},
	{MinDays: 3, Percent: decimal.NewFromInt(50)},
	{MinDays: 1, Percent: decimal.NewFromInt(25)},
}

// DaysUntil counts whole days from now until start.
func DaysUntil(start, now time.Time) int {
	d := start.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

func (p RefundPolicy) Percent(daysUntil int) decimal.Decimal {
	for _, band := range p {
		if daysUntil >= band.MinDays {
			return band.Percent
		}
	}
	return decimal.Zero
}

func RefundAmount(total decimal.Decimal, start, now time.Time, policy RefundPolicy) decimal.Decimal {
	if policy == nil {
		policy = DefaultRefundPolicy
	}
	pct := policy.Percent(DaysUntil(start, now))
	return Round(total.Mul(pct).Div(hundred))
}
