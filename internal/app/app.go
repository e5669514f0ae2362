package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finapi/internal/config"
	"github.com/fsdevblog/finapi/internal/logger"
	"github.com/fsdevblog/finapi/internal/repository/memdb"
	"github.com/fsdevblog/finapi/internal/repository/memrepo"
	"github.com/fsdevblog/finapi/internal/repository/repoargs"
	"github.com/fsdevblog/finapi/internal/service"
	"github.com/fsdevblog/finapi/internal/transport/api"
	"github.com/fsdevblog/finapi/internal/uow"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Component(a.Logger, "app", "run")
	log.Infof("Starting app on %s, session ttl %s", a.Config.RunAddress, a.Config.SessionTTL)

	unitOfWork, uowErr := initUOW(memdb.New())
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		SessionSecret: []byte(a.Config.SessionSecret),
		SessionTTL:    a.Config.SessionTTL,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:           a.Logger,
		CustomerService:  services.CustomerService,
		StatementService: services.StatementService,
		SessionService:   services.SessionService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("app shutdown: %w", shutdownErr)
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return fmt.Errorf("app run: %w", err)
	}
}

func initUOW(db *memdb.DB) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(db)

	// customer repo
	customerRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return memrepo.NewCustomerRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.CustomerRepoName), customerRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
