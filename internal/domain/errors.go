package domain

import (
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrNegativeAmount        = errors.New("negative amount")
	ErrUnknownEntryType      = errors.New("unknown entry type")
)
