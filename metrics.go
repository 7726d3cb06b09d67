package shopbook

import (
	"time"

	"github.com/kande/shopbook/date"
)

// Metrics are the figures shown on the home view. Sales, expenses and profit
// are scoped to a single calendar day; the debt figures are live totals over
// the whole book regardless of when each debt was recorded. That mixed
// scoping is intentional: a debt from last week still counts as outstanding
// today.
type Metrics struct {
	Day                  date.Date
	SalesToday           Money
	ExpensesToday        Money
	ProfitToday          Money
	DebtCount            int
	TotalDebtOutstanding Money
}

// DailyMetrics computes the metrics for the calendar day containing ref.
// The day boundary is midnight in ref's location.
func (s *Store) DailyMetrics(ref time.Time) Metrics {
	return computeMetrics(s.book, ref)
}

func computeMetrics(b *Book, ref time.Time) Metrics {
	day := date.Of(ref)
	m := Metrics{
		Day:                  day,
		SalesToday:           M(0, DefaultCurrency),
		ExpensesToday:        M(0, DefaultCurrency),
		TotalDebtOutstanding: M(0, DefaultCurrency),
	}

	for _, tx := range b.Transactions(ByDay(day)) {
		switch tx.Type {
		case Sale:
			m.SalesToday = m.SalesToday.Add(tx.Amount)
		case Expense:
			m.ExpensesToday = m.ExpensesToday.Add(tx.Amount)
		}
	}
	m.ProfitToday = m.SalesToday.Sub(m.ExpensesToday)

	for _, d := range b.Debts() {
		m.DebtCount++
		m.TotalDebtOutstanding = m.TotalDebtOutstanding.Add(d.Amount)
	}
	return m
}
