package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/repository/repoargs"
	"github.com/fsdevblog/finapi/internal/service/mocks"
	"github.com/fsdevblog/finapi/internal/uow"
	uowmocks "github.com/fsdevblog/finapi/internal/uow/mocks"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockCustomerRepo *mocks.MockCustomerRepository
	service          *CustomerService
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()

	var err error
	s.service, err = NewCustomerService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *CustomerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx настраивает мок UOW так, чтобы fn выполнялась с мок транзакцией.
func (s *CustomerServiceTestSuite) expectTx(times int) {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).Times(times)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(times)
}

func (s *CustomerServiceTestSuite) TestRegister() {
	args := RegisterCustomerArgs{TaxID: "111", Name: gofakeit.Name()}
	created := &domain.Customer{ID: uuid.New(), TaxID: args.TaxID, Name: args.Name}

	s.expectTx(1)
	s.mockCustomerRepo.EXPECT().FindByTaxID(gomock.Any(), args.TaxID).Return(nil, domain.ErrRecordNotFound)
	s.mockCustomerRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateCustomer{TaxID: args.TaxID, Name: args.Name}).
		Return(created, nil)

	customer, err := s.service.Register(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(created, customer)
}

func (s *CustomerServiceTestSuite) TestRegister_AlreadyExists() {
	args := RegisterCustomerArgs{TaxID: "111", Name: gofakeit.Name()}

	s.expectTx(2)
	// клиент уже есть в хранилище.
	s.mockCustomerRepo.EXPECT().FindByTaxID(gomock.Any(), "111").
		Return(&domain.Customer{TaxID: "111"}, nil)
	// клиента не нашли, но вставка упала на ограничении уникальности.
	s.mockCustomerRepo.EXPECT().FindByTaxID(gomock.Any(), "222").
		Return(nil, domain.ErrRecordNotFound)
	s.mockCustomerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, err := s.service.Register(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrCustomerAlreadyExists)

	args.TaxID = "222"
	_, err = s.service.Register(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrCustomerAlreadyExists)
}

func (s *CustomerServiceTestSuite) TestFindByTaxID_NotFound() {
	s.mockCustomerRepo.EXPECT().FindByTaxID(gomock.Any(), "404").Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.FindByTaxID(s.T().Context(), "404")
	s.Require().ErrorIs(err, domain.ErrCustomerNotFound)
}

func (s *CustomerServiceTestSuite) TestUpdateName() {
	id := uuid.New()
	s.mockCustomerRepo.EXPECT().UpdateName(gomock.Any(), id, "Bob").
		Return(&domain.Customer{ID: id, Name: "Bob"}, nil)

	customer, err := s.service.UpdateName(s.T().Context(), id, "Bob")
	s.Require().NoError(err)
	s.Equal("Bob", customer.Name)
}

func (s *CustomerServiceTestSuite) TestDelete() {
	id := uuid.New()
	missingID := uuid.New()
	remaining := []domain.Customer{{ID: uuid.New(), TaxID: "222"}}

	s.expectTx(2)
	s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	s.mockCustomerRepo.EXPECT().List(gomock.Any()).Return(remaining, nil).Times(1)
	s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), missingID).Return(domain.ErrRecordNotFound)

	customers, err := s.service.Delete(s.T().Context(), id)
	s.Require().NoError(err)
	s.Equal(remaining, customers)

	_, err = s.service.Delete(s.T().Context(), missingID)
	s.Require().ErrorIs(err, domain.ErrCustomerNotFound)
}
