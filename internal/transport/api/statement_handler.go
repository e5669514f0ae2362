package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const statementDateLayout = "2006-01-02"

type StatementHandler struct {
	svs StatementServicer
}

func NewStatementHandler(svs StatementServicer) *StatementHandler {
	return &StatementHandler{
		svs: svs,
	}
}

// Index GET StatementRoute. Полная выписка текущего клиента в порядке добавления записей.
func (h *StatementHandler) Index(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.svs.GetStatement(ctx, customer.ID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatementResponse(entries))
}

type StatementDateParams struct {
	Date string `binding:"required,datetime=2006-01-02" form:"date"`
}

// ByDate GET StatementDateRoute?date=YYYY-MM-DD. Записи выписки за календарный день.
func (h *StatementHandler) ByDate(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var params StatementDateParams
	if !bindQuery(c, &params) {
		return
	}
	// формат уже проверен валидатором.
	date, _ := time.Parse(statementDateLayout, params.Date)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.svs.GetStatementByDate(ctx, customer.ID, date)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatementResponse(entries))
}
