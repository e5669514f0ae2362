package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finapi/internal/service"
)

type BalanceHandler struct {
	svs StatementServicer
}

func NewBalanceHandler(svs StatementServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

// Index GET BalanceRoute. Отдает баланс числом.
func (b *BalanceHandler) Index(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetBalance(reqCtx, customer.ID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, balance.InexactFloat64())
}

type DepositParams struct {
	Description string           `binding:"max_bytes=255" json:"description"`
	Amount      *decimal.Decimal `binding:"required"      json:"amount"`
}

// Deposit POST DepositRoute.
func (b *BalanceHandler) Deposit(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var params DepositParams
	if !bindJSON(c, &params) || !checkAmount(c, *params.Amount) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, err := b.svs.Deposit(reqCtx, customer.ID, service.DepositArgs{
		Description: params.Description,
		Amount:      *params.Amount,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.AbortWithStatus(http.StatusCreated)
}

type WithdrawParams struct {
	Amount *decimal.Decimal `binding:"required" json:"amount"`
}

// Withdraw POST WithdrawRoute. Если средств не хватает - 400 "Insuficient funds".
func (b *BalanceHandler) Withdraw(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var params WithdrawParams
	if !bindJSON(c, &params) || !checkAmount(c, *params.Amount) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := b.svs.Withdraw(reqCtx, customer.ID, *params.Amount); err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.AbortWithStatus(http.StatusCreated)
}
