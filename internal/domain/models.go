package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uuid.UUID        `json:"id"`
	TaxID     string           `json:"taxId"`
	Name      string           `json:"name"`
	Statement []StatementEntry `json:"statement"`
}

// Clone возвращает копию клиента с собственной копией выписки.
func (c Customer) Clone() Customer {
	c.Statement = slices.Clone(c.Statement)
	if c.Statement == nil {
		c.Statement = []StatementEntry{}
	}
	return c
}

type StatementEntry struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Type        EntryType       `json:"type"`
}

// NewCreditEntry создает запись о зачислении средств.
func NewCreditEntry(description string, amount decimal.Decimal, createdAt time.Time) (StatementEntry, error) {
	return newEntry(EntryCredit, description, amount, createdAt)
}

// NewDebitEntry создает запись о списании средств. Описание у списаний не хранится.
func NewDebitEntry(amount decimal.Decimal, createdAt time.Time) (StatementEntry, error) {
	return newEntry(EntryDebit, "", amount, createdAt)
}

func newEntry(t EntryType, description string, amount decimal.Decimal, createdAt time.Time) (StatementEntry, error) {
	if amount.IsNegative() {
		return StatementEntry{}, ErrNegativeAmount
	}
	return StatementEntry{
		Description: description,
		Amount:      amount,
		CreatedAt:   createdAt,
		Type:        t,
	}, nil
}
