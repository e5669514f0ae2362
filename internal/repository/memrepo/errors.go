package memrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/finapi/internal/domain"
	"github.com/fsdevblog/finapi/internal/repository/memdb"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (memdb.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Нарушение уникальности (memdb.ErrUniqueViolation) возвращается как ErrDuplicateKey из domain.
//   - Отмена контекста пробрасывается как есть.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	switch {
	case errors.Is(err, memdb.ErrNoRows):
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	case errors.Is(err, memdb.ErrUniqueViolation):
		return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrDuplicateKey, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("[repository/%s] %w", msg, err)
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrUnknown, err.Error())
}
