package domain

import (
	"fmt"
)

// EntryType тип операции в выписке. Допустимы только EntryCredit и EntryDebit, нулевое значение невалидно.
type EntryType uint8

const (
	EntryCredit EntryType = iota + 1
	EntryDebit
)

const (
	entryCreditText = "credit"
	entryDebitText  = "debit"
)

func (t EntryType) String() string {
	switch t {
	case EntryCredit:
		return entryCreditText
	case EntryDebit:
		return entryDebitText
	default:
		return fmt.Sprintf("EntryType(%d)", uint8(t))
	}
}

func (t EntryType) IsValid() bool {
	return t == EntryCredit || t == EntryDebit
}

func (t EntryType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("marshal entry type: %w: %d", ErrUnknownEntryType, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *EntryType) UnmarshalText(text []byte) error {
	switch string(text) {
	case entryCreditText:
		*t = EntryCredit
	case entryDebitText:
		*t = EntryDebit
	default:
		return fmt.Errorf("unmarshal entry type: %w: %q", ErrUnknownEntryType, string(text))
	}
	return nil
}
