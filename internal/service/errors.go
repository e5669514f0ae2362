package service

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/finapi/internal/domain"
)

// customerErr заменяет ErrRecordNotFound репозитория на бизнес-ошибку ErrCustomerNotFound.
func customerErr(err error, op string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrCustomerNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
