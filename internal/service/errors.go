package service

import (
	"errors"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
	"github.com/bagdasarian/octofit-tracker/internal/repository"
)

// translateError переводит ошибки репозитория в доменные. resource используется в сообщении NOT_FOUND
func translateError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return domain.NewNotFoundError(resource)
	case errors.Is(err, repository.ErrDuplicateKey):
		return domain.NewDuplicateKeyError("%s violates a uniqueness constraint", resource)
	case errors.Is(err, repository.ErrForeignKey):
		return domain.NewValidationError("%s references a record that does not exist", resource)
	}
	return err
}
