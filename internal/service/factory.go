package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/finapi/internal/uow"
)

type AppServices struct {
	CustomerService  *CustomerService
	StatementService *StatementService
	SessionService   *SessionService
}

type FactoryArgs struct {
	SessionSecret []byte
	SessionTTL    time.Duration
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	customerService, customerServiceErr := NewCustomerService(unitOfWork)
	if customerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", customerServiceErr.Error())
	}

	statementService, statementServiceErr := NewStatementService(unitOfWork)
	if statementServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", statementServiceErr.Error())
	}

	sessionService, sessionServiceErr := NewSessionService(unitOfWork, args.SessionSecret, args.SessionTTL)
	if sessionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", sessionServiceErr.Error())
	}

	return &AppServices{
		CustomerService:  customerService,
		StatementService: statementService,
		SessionService:   sessionService,
	}, nil
}
