package memrepo

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/repository/memdb"
	"github.com/fsdevblog/finapi/internal/repository/repoargs"
	"github.com/fsdevblog/finapi/internal/uow"
)

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(db uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error) {
	customer := domain.Customer{
		ID:        uuid.New(),
		TaxID:     args.TaxID,
		Name:      args.Name,
		Statement: []domain.StatementEntry{},
	}

	err := r.db.Exec(ctx, func(rows []domain.Customer) ([]domain.Customer, error) {
		return append(rows, customer), nil
	})
	if err != nil {
		return nil, convertErr(err, "Create taxId=%s", args.TaxID)
	}
	return &customer, nil
}

// FindByTaxID возвращает первого клиента с указанным taxId.
func (r *CustomerRepository) FindByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	customer, err := r.findOne(ctx, func(c domain.Customer) bool { return c.TaxID == taxID })
	if err != nil {
		return nil, convertErr(err, "FindByTaxID taxId=%s", taxID)
	}
	return customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := r.findOne(ctx, byID(id))
	if err != nil {
		return nil, convertErr(err, "FindByID id=%s", id)
	}
	return customer, nil
}

// List возвращает всех клиентов в порядке их создания.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Query(ctx, func(rows []domain.Customer) error {
		customers = make([]domain.Customer, len(rows))
		for i, row := range rows {
			customers[i] = row.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, convertErr(err, "List")
	}
	return customers, nil
}

func (r *CustomerRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Customer, error) {
	var updated domain.Customer
	err := r.db.Exec(ctx, func(rows []domain.Customer) ([]domain.Customer, error) {
		i := slices.IndexFunc(rows, byID(id))
		if i < 0 {
			return nil, memdb.ErrNoRows
		}
		rows[i].Name = name
		updated = rows[i].Clone()
		return rows, nil
	})
	if err != nil {
		return nil, convertErr(err, "UpdateName id=%s", id)
	}
	return &updated, nil
}

// Delete удаляет клиента по его id.
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.Exec(ctx, func(rows []domain.Customer) ([]domain.Customer, error) {
		i := slices.IndexFunc(rows, byID(id))
		if i < 0 {
			return nil, memdb.ErrNoRows
		}
		return slices.Delete(rows, i, i+1), nil
	})
	return convertErr(err, "Delete id=%s", id)
}

// AppendEntry добавляет запись в конец выписки клиента.
func (r *CustomerRepository) AppendEntry(
	ctx context.Context,
	id uuid.UUID,
	entry domain.StatementEntry,
) (*domain.StatementEntry, error) {
	err := r.db.Exec(ctx, func(rows []domain.Customer) ([]domain.Customer, error) {
		i := slices.IndexFunc(rows, byID(id))
		if i < 0 {
			return nil, memdb.ErrNoRows
		}
		rows[i].Statement = append(rows[i].Statement, entry)
		return rows, nil
	})
	if err != nil {
		return nil, convertErr(err, "AppendEntry id=%s", id)
	}
	return &entry, nil
}

func (r *CustomerRepository) findOne(ctx context.Context, match func(domain.Customer) bool) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Query(ctx, func(rows []domain.Customer) error {
		i := slices.IndexFunc(rows, match)
		if i < 0 {
			return memdb.ErrNoRows
		}
		customer = rows[i].Clone()
		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &customer, nil
}

func byID(id uuid.UUID) func(domain.Customer) bool {
	return func(c domain.Customer) bool {
		return c.ID == id
	}
}
