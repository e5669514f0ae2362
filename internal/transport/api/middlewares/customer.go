package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/service/tokens"
)

const (
	CurrentCustomerKey = "currentCustomer"
	TaxIDHeader        = "taxId"

	MsgCustomerNotFound = "Customer not found"

	resolveTimeout = 3 * time.Second
)

type CustomerFinder interface {
	FindByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
}

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Customer, error)
}

// ResolveCustomer определяет клиента, от имени которого выполняется запрос, и кладет его в контекст
// (поле CurrentCustomerKey).
//
// Если передан заголовок Authorization: Bearer <token>, клиент определяется по токену сессии, невалидный
// токен - 401. Иначе клиент ищется по заголовку taxId. Не найденный клиент - 400 "Customer not found".
func ResolveCustomer(finder CustomerFinder, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, resolveTimeout)
		defer cancel()

		var customer *domain.Customer
		var err error

		if token, ok := bearerToken(c); ok {
			customer, err = sessions.Resolve(ctx, token)
		} else {
			customer, err = finder.FindByTaxID(ctx, c.GetHeader(TaxIDHeader))
		}

		if err != nil {
			switch {
			case errors.Is(err, tokens.ErrInvalidToken):
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			case errors.Is(err, domain.ErrCustomerNotFound):
				_ = c.AbortWithError(http.StatusBadRequest, errors.New(MsgCustomerNotFound)).
					SetType(gin.ErrorTypePublic)
			default:
				_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			}
			return
		}

		c.Set(CurrentCustomerKey, customer)
		c.Next()
	}
}

// CurrentCustomer возвращает клиента, установленного ResolveCustomer. Если клиента в контексте нет, вернется nil.
func CurrentCustomer(c *gin.Context) *domain.Customer {
	value, exist := c.Get(CurrentCustomerKey)
	if !exist {
		return nil
	}
	customer, ok := value.(*domain.Customer)
	if !ok {
		return nil
	}
	return customer
}

func bearerToken(c *gin.Context) (string, bool) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || !strings.EqualFold(tokenHeader[:len(bearer)], bearer) {
		return "", false
	}
	return strings.TrimSpace(tokenHeader[len(bearer):]), true
}
