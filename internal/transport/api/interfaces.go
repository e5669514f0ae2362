package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/service"
)

type CustomerServicer interface {
	Register(ctx context.Context, args service.RegisterCustomerArgs) (*domain.Customer, error)
	FindByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) ([]domain.Customer, error)
}

type StatementServicer interface {
	Deposit(ctx context.Context, customerID uuid.UUID, args service.DepositArgs) (*domain.StatementEntry, error)
	Withdraw(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) (*domain.StatementEntry, error)
	GetBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)
	GetStatement(ctx context.Context, customerID uuid.UUID) ([]domain.StatementEntry, error)
	GetStatementByDate(ctx context.Context, customerID uuid.UUID, date time.Time) ([]domain.StatementEntry, error)
}

type SessionServicer interface {
	Issue(ctx context.Context, customerID uuid.UUID) (string, error)
	Resolve(ctx context.Context, token string) (*domain.Customer, error)
}
