package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/service/tokens"
	"github.com/fsdevblog/finapi/internal/uow"
)

// SessionService выпускает токены-сессии клиента и определяет клиента по токену.
type SessionService struct {
	customerRepo CustomerRepository
	secret       []byte
	ttl          time.Duration
}

func NewSessionService(u uow.UOW, secret []byte, ttl time.Duration) (*SessionService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, customerRepoName)
	if err != nil {
		return nil, err
	}
	return &SessionService{
		customerRepo: customerRepo,
		secret:       secret,
		ttl:          ttl,
	}, nil
}

func (s *SessionService) Issue(_ context.Context, customerID uuid.UUID) (string, error) {
	token, err := tokens.GenerateCustomerJWT(customerID, s.ttl, s.secret)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Resolve проверяет токен и возвращает клиента, для которого он выпущен. Возвращает tokens.ErrInvalidToken
// для невалидного токена и domain.ErrCustomerNotFound, если клиента уже нет.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Customer, error) {
	claims, err := tokens.ValidateCustomerJWT(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	customer, findErr := s.customerRepo.FindByID(ctx, claims.CustomerID)
	if findErr != nil {
		return nil, customerErr(findErr, "resolve session")
	}
	return customer, nil
}
