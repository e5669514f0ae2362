package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/repository/repoargs"
	"github.com/fsdevblog/finapi/internal/uow"
)

var customerRepoName = uow.RepositoryName(repoargs.CustomerRepoName)

type CustomerService struct {
	uow          uow.UOW
	customerRepo CustomerRepository
}

func NewCustomerService(u uow.UOW) (*CustomerService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, customerRepoName)
	if err != nil {
		return nil, err
	}
	return &CustomerService{
		uow:          u,
		customerRepo: customerRepo,
	}, nil
}

type RegisterCustomerArgs struct {
	TaxID string
	Name  string
}

// Register создает клиента с пустой выпиской. Если клиент с таким taxId уже есть, вернется
// domain.ErrCustomerAlreadyExists. Проверка и вставка выполняются в одной транзакции.
func (c *CustomerService) Register(ctx context.Context, args RegisterCustomerArgs) (*domain.Customer, error) {
	var customer *domain.Customer

	txErr := c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[CustomerRepository](tx, customerRepoName)
		if repoErr != nil {
			return repoErr
		}

		_, findErr := repo.FindByTaxID(ctx, args.TaxID)
		switch {
		case findErr == nil:
			return domain.ErrCustomerAlreadyExists
		case !errors.Is(findErr, domain.ErrRecordNotFound):
			return findErr //nolint:wrapcheck
		}

		created, createErr := repo.Create(ctx, repoargs.CreateCustomer{
			TaxID: args.TaxID,
			Name:  args.Name,
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				return domain.ErrCustomerAlreadyExists
			}
			return createErr //nolint:wrapcheck
		}
		customer = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("register customer: %w", txErr)
	}
	return customer, nil
}

func (c *CustomerService) FindByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	customer, err := c.customerRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		return nil, customerErr(err, "find customer by taxId")
	}
	return customer, nil
}

func (c *CustomerService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, customerErr(err, "find customer by id")
	}
	return customer, nil
}

func (c *CustomerService) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Customer, error) {
	customer, err := c.customerRepo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, customerErr(err, "update customer name")
	}
	return customer, nil
}

// Delete удаляет клиента и возвращает оставшихся клиентов.
func (c *CustomerService) Delete(ctx context.Context, id uuid.UUID) ([]domain.Customer, error) {
	var customers []domain.Customer

	txErr := c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[CustomerRepository](tx, customerRepoName)
		if repoErr != nil {
			return repoErr
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err //nolint:wrapcheck
		}

		var listErr error
		customers, listErr = repo.List(ctx)
		return listErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, customerErr(txErr, "delete customer")
	}
	return customers, nil
}
