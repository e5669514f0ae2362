package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/repository/repoargs"
	"github.com/fsdevblog/finapi/internal/service/mocks"
	"github.com/fsdevblog/finapi/internal/uow"
	uowmocks "github.com/fsdevblog/finapi/internal/uow/mocks"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockCustomerRepo *mocks.MockCustomerRepository
	service          *StatementService
	now              time.Time
	loc              *time.Location
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()

	s.loc = time.FixedZone("UTC+5", 5*60*60)
	s.now = time.Date(2024, time.March, 10, 12, 0, 0, 0, s.loc)

	service, err := NewStatementService(s.mockUOW)
	s.Require().NoError(err)
	s.service = service.
		SetClock(func() time.Time { return s.now }).
		SetLocation(s.loc)
}

func (s *StatementServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *StatementServiceTestSuite) customerWithBalance(balance int64) *domain.Customer {
	entry, err := domain.NewCreditEntry("salary", decimal.NewFromInt(balance), s.now)
	s.Require().NoError(err)
	return &domain.Customer{ID: uuid.New(), TaxID: "111", Statement: []domain.StatementEntry{entry}}
}

func (s *StatementServiceTestSuite) TestDeposit() {
	id := uuid.New()

	s.mockCustomerRepo.EXPECT().AppendEntry(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, entry domain.StatementEntry) (*domain.StatementEntry, error) {
			// убеждаемся что мок вызван с правильными данными.
			s.Equal(domain.EntryCredit, entry.Type)
			s.Equal("salary", entry.Description)
			s.True(decimal.NewFromInt(1000).Equal(entry.Amount))
			s.Equal(s.now, entry.CreatedAt)
			return &entry, nil
		})

	entry, err := s.service.Deposit(s.T().Context(), id, DepositArgs{
		Description: "salary",
		Amount:      decimal.NewFromInt(1000),
	})
	s.Require().NoError(err)
	s.NotNil(entry)
}

func (s *StatementServiceTestSuite) TestDeposit_Errors() {
	missingID := uuid.New()
	s.mockCustomerRepo.EXPECT().AppendEntry(gomock.Any(), missingID, gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Deposit(s.T().Context(), missingID, DepositArgs{Amount: decimal.NewFromInt(1)})
	s.Require().ErrorIs(err, domain.ErrCustomerNotFound)

	// до репозитория дело не доходит.
	_, err = s.service.Deposit(s.T().Context(), uuid.New(), DepositArgs{Amount: decimal.NewFromInt(-1)})
	s.Require().ErrorIs(err, domain.ErrNegativeAmount)
}

func (s *StatementServiceTestSuite) TestWithdraw() {
	customer := s.customerWithBalance(1000)

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).Times(3)
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(3)
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(3)

	// запись о списании создается только для успешных случаев.
	s.mockCustomerRepo.EXPECT().AppendEntry(gomock.Any(), customer.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, entry domain.StatementEntry) (*domain.StatementEntry, error) {
			s.Equal(domain.EntryDebit, entry.Type)
			s.Empty(entry.Description)
			return &entry, nil
		}).Times(2)

	cases := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "part of balance", amount: decimal.NewFromInt(400)},
		{name: "whole balance", amount: decimal.NewFromInt(1000)},
		{name: "insufficient funds", amount: decimal.RequireFromString("1000.01"), wantErr: domain.ErrInsufficientFunds},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			entry, err := s.service.Withdraw(s.T().Context(), customer.ID, t.amount)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.True(t.amount.Equal(entry.Amount))
		})
	}
}

func (s *StatementServiceTestSuite) TestWithdraw_CustomerNotFound() {
	id := uuid.New()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CustomerRepoName)).Return(s.mockCustomerRepo, nil)
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Withdraw(s.T().Context(), id, decimal.NewFromInt(1))
	s.Require().ErrorIs(err, domain.ErrCustomerNotFound)
}

func (s *StatementServiceTestSuite) TestGetBalance() {
	customer := s.customerWithBalance(600)
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil)

	balance, err := s.service.GetBalance(s.T().Context(), customer.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(600).Equal(balance))
}

func (s *StatementServiceTestSuite) TestGetStatementByDate() {
	today, err := domain.NewCreditEntry("today", decimal.NewFromInt(1), s.now)
	s.Require().NoError(err)
	yesterday, err := domain.NewCreditEntry("yesterday", decimal.NewFromInt(2), s.now.AddDate(0, 0, -1))
	s.Require().NoError(err)
	// 21:00 UTC девятого марта — это 02:00 десятого марта в UTC+5.
	earlyToday, err := domain.NewCreditEntry("early", decimal.NewFromInt(3),
		time.Date(2024, time.March, 9, 21, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	customer := &domain.Customer{
		ID:        uuid.New(),
		Statement: []domain.StatementEntry{yesterday, earlyToday, today},
	}
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(2)

	// дата приходит как календарный день, часовой пояс самой даты не учитывается.
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	entries, err := s.service.GetStatementByDate(s.T().Context(), customer.ID, date)
	s.Require().NoError(err)
	s.Equal([]domain.StatementEntry{earlyToday, today}, entries)

	entries, err = s.service.GetStatementByDate(s.T().Context(), customer.ID, date.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Empty(entries)
}
