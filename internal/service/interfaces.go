package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	FindByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AppendEntry(ctx context.Context, id uuid.UUID, entry domain.StatementEntry) (*domain.StatementEntry, error)
}
