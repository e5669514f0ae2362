// Package memdb хранилище клиентов в памяти процесса. Данные живут, пока живет процесс.
//
// Чтение выполняется под разделяемой блокировкой. Запись всегда идет через транзакцию: Begin захватывает
// эксклюзивную блокировку и работает с копией таблицы, Commit подменяет таблицу копией, Rollback
// отбрасывает копию. Уникальность taxId проверяется при каждой записи.
package memdb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fsdevblog/finapi/internal/domain"
)

var (
	ErrNoRows          = errors.New("[memdb] no rows in result set")
	ErrUniqueViolation = errors.New("[memdb] unique constraint violation")
	ErrTxClosed        = errors.New("[memdb] tx is closed")
)

// QueryFn получает текущие строки таблицы. Строки нельзя изменять и сохранять за пределами вызова.
type QueryFn func(rows []domain.Customer) error

// ExecFn получает строки таблицы и возвращает новое их состояние.
type ExecFn func(rows []domain.Customer) ([]domain.Customer, error)

type DB struct {
	mu   sync.RWMutex
	rows []domain.Customer
}

func New() *DB {
	return &DB{
		rows: make([]domain.Customer, 0),
	}
}

// Query выполняет fn под блокировкой на чтение.
func (db *DB) Query(ctx context.Context, fn QueryFn) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(db.rows)
}

// Exec выполняет fn в отдельной транзакции.
func (db *DB) Exec(ctx context.Context, fn ExecFn) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if execErr := tx.Exec(ctx, fn); execErr != nil {
		return execErr
	}
	return tx.Commit()
}

// Begin открывает транзакцию. Пока транзакция не завершена, любые другие операции с DB ждут.
func (db *DB) Begin(ctx context.Context) (*Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	db.mu.Lock()

	return &Tx{
		db:   db,
		rows: cloneRows(db.rows),
	}, nil
}

type Tx struct {
	db     *DB
	rows   []domain.Customer
	closed bool
}

func (tx *Tx) Query(_ context.Context, fn QueryFn) error {
	if tx.closed {
		return ErrTxClosed
	}
	return fn(tx.rows)
}

func (tx *Tx) Exec(_ context.Context, fn ExecFn) error {
	if tx.closed {
		return ErrTxClosed
	}
	rows, err := fn(tx.rows)
	if err != nil {
		return err
	}
	if uniqErr := checkUniqueTaxID(rows); uniqErr != nil {
		return uniqErr
	}
	tx.rows = rows
	return nil
}

func (tx *Tx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	tx.db.rows = tx.rows
	tx.db.mu.Unlock()
	return nil
}

// Rollback отменяет изменения транзакции. Для завершенной транзакции возвращает ErrTxClosed.
func (tx *Tx) Rollback() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	tx.rows = nil
	tx.db.mu.Unlock()
	return nil
}

func checkUniqueTaxID(rows []domain.Customer) error {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.TaxID]; ok {
			return fmt.Errorf("%w: taxId %q", ErrUniqueViolation, row.TaxID)
		}
		seen[row.TaxID] = struct{}{}
	}
	return nil
}

func cloneRows(rows []domain.Customer) []domain.Customer {
	res := make([]domain.Customer, len(rows))
	for i, row := range rows {
		res[i] = row.Clone()
	}
	return res
}
