package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance сворачивает выписку в итоговый баланс: сумма зачислений минус сумма списаний.
func Balance(entries []StatementEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, entry := range entries {
		switch entry.Type {
		case EntryCredit:
			balance = balance.Add(entry.Amount)
		case EntryDebit:
			balance = balance.Sub(entry.Amount)
		}
	}
	return balance
}

// FilterByDate возвращает записи, созданные в тот же календарный день, что и date.
// Сравнение ведется в часовом поясе loc, date приводится к полуночи этого дня.
func FilterByDate(entries []StatementEntry, date time.Time, loc *time.Location) []StatementEntry {
	y, m, d := date.In(loc).Date()

	res := make([]StatementEntry, 0, len(entries))
	for _, entry := range entries {
		ey, em, ed := entry.CreatedAt.In(loc).Date()
		if ey == y && em == m && ed == d {
			res = append(res, entry)
		}
	}
	return res
}
