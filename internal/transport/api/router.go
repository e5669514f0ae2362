package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finapi/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	HealthRoute        = "/"
	AccountRoute       = "/account"
	StatementRoute     = "/statement"
	StatementDateRoute = "/statement/date"
	DepositRoute       = "/deposit"
	WithdrawRoute      = "/withdraw"
	BalanceRoute       = "/balance"
	SessionRoute       = "/session"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	CustomerService  CustomerServicer
	StatementService StatementServicer
	SessionService   SessionServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidatorsOnce(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	accountHandler := NewAccountHandler(args.CustomerService)
	statementHandler := NewStatementHandler(args.StatementService)
	balanceHandler := NewBalanceHandler(args.StatementService)
	sessionHandler := NewSessionHandler(args.SessionService)

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "server is running"})
	})
	r.POST(AccountRoute, accountHandler.Create)

	customer := r.Group("/")
	customer.Use(middlewares.ResolveCustomer(args.CustomerService, args.SessionService))
	// ниже все роуты группы требуют определенного клиента.
	customer.GET(AccountRoute, accountHandler.Show)
	customer.PUT(AccountRoute, accountHandler.Update)
	customer.DELETE(AccountRoute, accountHandler.Delete)

	customer.GET(StatementRoute, statementHandler.Index)
	customer.GET(StatementDateRoute, statementHandler.ByDate)

	customer.POST(DepositRoute, balanceHandler.Deposit)
	customer.POST(WithdrawRoute, balanceHandler.Withdraw)
	customer.GET(BalanceRoute, balanceHandler.Index)

	customer.POST(SessionRoute, sessionHandler.Create)
	return r, nil
}
