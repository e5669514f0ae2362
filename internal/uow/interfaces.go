package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/fsdevblog/finapi/internal/repository/memdb"
)

type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX общий интерфейс memdb.DB и memdb.Tx, с которым работают репозитории.
type DBTX interface {
	Query(ctx context.Context, fn memdb.QueryFn) error
	Exec(ctx context.Context, fn memdb.ExecFn) error
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}
