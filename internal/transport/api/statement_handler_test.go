package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/transport/api/testutils"
)

type StatementHandlerTestSuite struct {
	handlerSuite
	entries []domain.StatementEntry
}

func TestStatementHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}

func (s *StatementHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()
	s.expectCurrentCustomer()

	createdAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	credit, err := domain.NewCreditEntry("salary", decimal.NewFromInt(1000), createdAt)
	s.Require().NoError(err)
	debit, err := domain.NewDebitEntry(decimal.RequireFromString("400.25"), createdAt)
	s.Require().NoError(err)
	noDescription, err := domain.NewCreditEntry("", decimal.NewFromInt(5), createdAt)
	s.Require().NoError(err)
	s.entries = []domain.StatementEntry{credit, debit, noDescription}
}

func (s *StatementHandlerTestSuite) TestIndex() {
	s.mockStatementService.EXPECT().GetStatement(gomock.Any(), s.customer.ID).Return(s.entries, nil)

	status, body := s.do(requestArgs{method: http.MethodGet, url: StatementRoute, taxID: s.customer.TaxID})
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`[
		{"description":"salary","amount":1000,"created_at":"2024-03-10T12:00:00Z","type":"credit"},
		{"amount":400.25,"created_at":"2024-03-10T12:00:00Z","type":"debit"},
		{"description":"","amount":5,"created_at":"2024-03-10T12:00:00Z","type":"credit"}
	]`, string(body))
}

func (s *StatementHandlerTestSuite) TestByDate() {
	s.mockStatementService.EXPECT().
		GetStatementByDate(gomock.Any(), s.customer.ID, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)).
		Return(s.entries[:1], nil)
	s.mockStatementService.EXPECT().
		GetStatementByDate(gomock.Any(), s.customer.ID, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)).
		Return([]domain.StatementEntry{}, nil)

	cases := []struct {
		name       string
		date       string
		wantStatus int
		wantLen    int
	}{
		{name: "day with entries", date: "2024-03-10", wantStatus: http.StatusOK, wantLen: 1},
		{name: "day without entries", date: "2024-03-11", wantStatus: http.StatusOK, wantLen: 0},
		{name: "invalid date", date: "10/03/2024", wantStatus: http.StatusUnprocessableEntity},
		{name: "no date", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var opts []func(*testutils.RequestOptions)
			if t.date != "" {
				opts = append(opts, testutils.WithQuery("date", t.date))
			}
			status, body := s.do(requestArgs{
				method: http.MethodGet,
				url:    StatementDateRoute,
				taxID:  s.customer.TaxID,
				opts:   opts,
			})
			s.Require().Equal(t.wantStatus, status, string(body))
			if t.wantStatus != http.StatusOK {
				return
			}

			var res []StatementEntryResponse
			s.Require().NoError(json.Unmarshal(body, &res))
			s.Len(res, t.wantLen)
		})
	}
}
