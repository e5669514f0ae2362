package api

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/logger"
	"github.com/fsdevblog/finapi/internal/transport/api/middlewares"
	"github.com/fsdevblog/finapi/internal/transport/api/mocks"
	"github.com/fsdevblog/finapi/internal/transport/api/testutils"
)

// handlerSuite общая часть тестов хэндлеров: роутер на моках сервисов и текущий клиент.
type handlerSuite struct {
	suite.Suite
	router               *gin.Engine
	mockCustomerService  *mocks.MockCustomerServicer
	mockStatementService *mocks.MockStatementServicer
	mockSessionService   *mocks.MockSessionServicer
	customer             *domain.Customer
}

func (s *handlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *handlerSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockCustomerService = mocks.NewMockCustomerServicer(mockCtrl)
	s.mockStatementService = mocks.NewMockStatementServicer(mockCtrl)
	s.mockSessionService = mocks.NewMockSessionServicer(mockCtrl)
	s.customer = &domain.Customer{ID: uuid.New(), TaxID: "111", Name: "Alice", Statement: []domain.StatementEntry{}}

	router, err := New(RouterArgs{
		Logger:           logger.New(os.Stdout),
		CustomerService:  s.mockCustomerService,
		StatementService: s.mockStatementService,
		SessionService:   s.mockSessionService,
	})
	s.Require().NoError(err)
	s.router = router
}

// expectCurrentCustomer настраивает резолвер клиента по заголовку taxId.
func (s *handlerSuite) expectCurrentCustomer() {
	s.mockCustomerService.EXPECT().
		FindByTaxID(gomock.Any(), s.customer.TaxID).
		Return(s.customer, nil).AnyTimes()
}

type requestArgs struct {
	method  string
	url     string
	payload any
	taxID   string
	opts    []func(*testutils.RequestOptions)
}

// do выполняет запрос и возвращает статус и тело ответа.
func (s *handlerSuite) do(args requestArgs) (int, []byte) {
	var body io.Reader
	if args.payload != nil {
		if raw, ok := args.payload.(string); ok {
			body = bytes.NewBufferString(raw)
		} else {
			payload, err := json.Marshal(args.payload)
			s.Require().NoError(err)
			body = bytes.NewReader(payload)
		}
	}

	opts := args.opts
	if args.taxID != "" {
		opts = append(opts, testutils.WithHeader(middlewares.TaxIDHeader, args.taxID))
	}

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: args.method,
		URL:    args.url,
		Body:   body,
	}, opts...)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	resBody, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, resBody
}

func (s *handlerSuite) requireError(status int, wantStatus int, body []byte, wantMsg string) {
	s.Require().Equal(wantStatus, status, string(body))
	var res struct {
		Error string `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(body, &res), string(body))
	s.Equal(wantMsg, res.Error)
}

