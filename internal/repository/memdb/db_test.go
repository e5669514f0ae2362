package memdb

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finapi/internal/domain"
)

type DBTestSuite struct {
	suite.Suite
	db *DB
}

func TestDBSuite(t *testing.T) {
	suite.Run(t, new(DBTestSuite))
}

func (s *DBTestSuite) SetupTest() {
	s.db = New()
}

func insert(c domain.Customer) ExecFn {
	return func(rows []domain.Customer) ([]domain.Customer, error) {
		return append(rows, c), nil
	}
}

func (s *DBTestSuite) newCustomer(taxID string) domain.Customer {
	return domain.Customer{ID: uuid.New(), TaxID: taxID, Name: gofakeit.Name()}
}

func (s *DBTestSuite) count() int {
	var n int
	s.Require().NoError(s.db.Query(s.T().Context(), func(rows []domain.Customer) error {
		n = len(rows)
		return nil
	}))
	return n
}

func (s *DBTestSuite) TestExec_UniqueTaxID() {
	ctx := s.T().Context()

	s.Require().NoError(s.db.Exec(ctx, insert(s.newCustomer("111"))))
	err := s.db.Exec(ctx, insert(s.newCustomer("111")))
	s.Require().ErrorIs(err, ErrUniqueViolation)

	s.Equal(1, s.count())
}

func (s *DBTestSuite) TestRollback_DiscardsChanges() {
	ctx := s.T().Context()

	tx, err := s.db.Begin(ctx)
	s.Require().NoError(err)
	s.Require().NoError(tx.Exec(ctx, insert(s.newCustomer("111"))))
	s.Require().NoError(tx.Rollback())

	s.Equal(0, s.count())
	s.Require().ErrorIs(tx.Commit(), ErrTxClosed)
	s.Require().ErrorIs(tx.Exec(ctx, insert(s.newCustomer("222"))), ErrTxClosed)
}

func (s *DBTestSuite) TestExec_FailedFnKeepsState() {
	ctx := s.T().Context()
	s.Require().NoError(s.db.Exec(ctx, insert(s.newCustomer("111"))))

	boom := errors.New("boom")
	err := s.db.Exec(ctx, func(rows []domain.Customer) ([]domain.Customer, error) {
		rows[0].Name = "changed"
		return nil, boom
	})
	s.Require().ErrorIs(err, boom)

	s.Require().NoError(s.db.Query(ctx, func(rows []domain.Customer) error {
		s.NotEqual("changed", rows[0].Name)
		return nil
	}))
}

func (s *DBTestSuite) TestBegin_CanceledContext() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	_, err := s.db.Begin(ctx)
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().ErrorIs(s.db.Query(ctx, func([]domain.Customer) error { return nil }), context.Canceled)
}

func (s *DBTestSuite) TestExec_Concurrent() {
	ctx := s.T().Context()
	const workers = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int

	for range workers {
		c := s.newCustomer("same")
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.db.Exec(ctx, insert(c)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(1, s.count())
}
