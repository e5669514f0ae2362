package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/transport/api/middlewares"
)

const (
	msgCustomerAlreadyExists = "Customer already exists"
	msgInsufficientFunds     = "Insuficient funds"
	msgNegativeAmount        = "amount must not be negative"
	msgAmountOutOfRange      = "amount is out of range"
)

// Границы суммы одной операции. Экспоненту нужно проверить до любой арифметики с суммой: decimal приводит
// операнды к общей экспоненте.
const (
	maxAmountExponent = 12
	minAmountExponent = -8
)

var maxAmount = decimal.New(1, maxAmountExponent)

// StatementEntryResponse запись выписки в ответе. У зачислений description отдается всегда, даже пустой,
// у списаний его нет.
type StatementEntryResponse struct {
	Description *string          `json:"description,omitempty"`
	Amount      float64          `json:"amount"`
	CreatedAt   time.Time        `json:"created_at"`
	Type        domain.EntryType `json:"type"`
}

type CustomerResponse struct {
	ID        uuid.UUID                `json:"id"`
	TaxID     string                   `json:"taxId"`
	Name      string                   `json:"name"`
	Statement []StatementEntryResponse `json:"statement"`
}

func newStatementResponse(entries []domain.StatementEntry) []StatementEntryResponse {
	response := make([]StatementEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = StatementEntryResponse{
			Amount:    entry.Amount.InexactFloat64(),
			CreatedAt: entry.CreatedAt,
			Type:      entry.Type,
		}
		if entry.Type == domain.EntryCredit {
			response[i].Description = &entry.Description
		}
	}
	return response
}

func newCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		TaxID:     customer.TaxID,
		Name:      customer.Name,
		Statement: newStatementResponse(customer.Statement),
	}
}

// currentCustomer берет из контекста gin текущего клиента. Клиент устанавливается в
// middlewares.ResolveCustomer. Если клиента нет, запрос прерывается с ошибкой 500 и вернется false.
func currentCustomer(c *gin.Context) (*domain.Customer, bool) {
	customer := middlewares.CurrentCustomer(c)
	if customer == nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("current customer is not set")).
			SetType(gin.ErrorTypePrivate)
		return nil, false
	}
	return customer, true
}

// bindJSON разбирает тело запроса в params. Ошибки валидации - 422, прочие ошибки разбора - 400.
func bindJSON(c *gin.Context, params any) bool {
	if bindErr := c.ShouldBindJSON(params); bindErr != nil {
		abortWithBindErr(c, bindErr)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, params any) bool {
	if bindErr := c.ShouldBindQuery(params); bindErr != nil {
		abortWithBindErr(c, bindErr)
		return false
	}
	return true
}

func abortWithBindErr(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// checkAmount проверяет сумму операции. Отрицательная сумма, сумма больше maxAmount или с точностью
// мельче 10^minAmountExponent прерывают запрос со статусом 422.
func checkAmount(c *gin.Context, amount decimal.Decimal) bool {
	if amount.IsNegative() {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": msgNegativeAmount})
		return false
	}
	if !amountInRange(amount) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": msgAmountOutOfRange})
		return false
	}
	return true
}

func amountInRange(amount decimal.Decimal) bool {
	exp := int64(amount.Exponent())
	if amount.IsZero() {
		return exp >= minAmountExponent && exp <= maxAmountExponent
	}
	// 1000e-3 хранится как 1000 с экспонентой -3, поэтому порядок числа считаем по значащим цифрам.
	if exp > maxAmountExponent || exp+int64(amount.NumDigits()) <= minAmountExponent {
		return false
	}
	if exp < minAmountExponent && !amount.Equal(amount.Truncate(-minAmountExponent)) {
		return false
	}
	return amount.LessThanOrEqual(maxAmount)
}

// abortWithServiceErr переводит ошибки сервисного слоя в http ответ. Нарушения бизнес-правил и не найденный
// клиент отдаются клиенту как 400 с текстом ошибки.
func abortWithServiceErr(c *gin.Context, err error) {
	var msg string
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		msg = middlewares.MsgCustomerNotFound
	case errors.Is(err, domain.ErrCustomerAlreadyExists):
		msg = msgCustomerAlreadyExists
	case errors.Is(err, domain.ErrInsufficientFunds):
		msg = msgInsufficientFunds
	case errors.Is(err, domain.ErrNegativeAmount):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": msgNegativeAmount})
		return
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, errors.New(msg)).SetType(gin.ErrorTypePublic)
}
