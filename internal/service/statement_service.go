package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/uow"
)

type StatementService struct {
	uow          uow.UOW
	customerRepo CustomerRepository
	now          func() time.Time
	loc          *time.Location
}

func NewStatementService(u uow.UOW) (*StatementService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, customerRepoName)
	if err != nil {
		return nil, err
	}
	return &StatementService{
		uow:          u,
		customerRepo: customerRepo,
		now:          time.Now,
		loc:          time.Local,
	}, nil
}

// SetClock подменяет источник текущего времени для новых записей выписки.
func (s *StatementService) SetClock(now func() time.Time) *StatementService {
	s.now = now
	return s
}

// SetLocation устанавливает часовой пояс, в котором определяется календарный день записи.
func (s *StatementService) SetLocation(loc *time.Location) *StatementService {
	s.loc = loc
	return s
}

type DepositArgs struct {
	Description string
	Amount      decimal.Decimal
}

// Deposit добавляет в выписку клиента запись о зачислении.
func (s *StatementService) Deposit(
	ctx context.Context,
	customerID uuid.UUID,
	args DepositArgs,
) (*domain.StatementEntry, error) {
	entry, err := domain.NewCreditEntry(args.Description, args.Amount, s.now())
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}

	created, appendErr := s.customerRepo.AppendEntry(ctx, customerID, entry)
	if appendErr != nil {
		return nil, customerErr(appendErr, "deposit")
	}
	return created, nil
}

// Withdraw списывает amount со счета клиента. Если баланс меньше amount, вернется
// domain.ErrInsufficientFunds и выписка не изменится.
//
// Алгоритм работы:
//  1. В транзакции получает клиента и считает баланс по его выписке.
//  2. Сравнивает баланс с amount.
//  3. Добавляет запись о списании.
func (s *StatementService) Withdraw(
	ctx context.Context,
	customerID uuid.UUID,
	amount decimal.Decimal,
) (*domain.StatementEntry, error) {
	entry, err := domain.NewDebitEntry(amount, s.now())
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	var created *domain.StatementEntry

	txErr := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[CustomerRepository](tx, customerRepoName)
		if repoErr != nil {
			return repoErr
		}

		customer, findErr := repo.FindByID(ctx, customerID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if domain.Balance(customer.Statement).LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		var appendErr error
		created, appendErr = repo.AppendEntry(ctx, customerID, entry)
		return appendErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, customerErr(txErr, "withdraw")
	}
	return created, nil
}

func (s *StatementService) GetBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return decimal.Zero, customerErr(err, "get balance")
	}
	return domain.Balance(customer.Statement), nil
}

func (s *StatementService) GetStatement(ctx context.Context, customerID uuid.UUID) ([]domain.StatementEntry, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, customerErr(err, "get statement")
	}
	return customer.Statement, nil
}

// GetStatementByDate возвращает записи выписки, созданные в календарный день date. Из date берется только
// дата, день отсчитывается от полуночи в часовом поясе сервиса.
func (s *StatementService) GetStatementByDate(
	ctx context.Context,
	customerID uuid.UUID,
	date time.Time,
) ([]domain.StatementEntry, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, customerErr(err, "get statement by date")
	}
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, s.loc)

	return domain.FilterByDate(customer.Statement, midnight, s.loc), nil
}
