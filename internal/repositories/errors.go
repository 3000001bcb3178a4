package repositories

import (
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var notFound *models.NotFoundError
	var invalid *models.ValidationError
	var storeErr *models.StoreError
	if errors.As(err, &notFound) || errors.As(err, &invalid) || errors.As(err, &storeErr) {
		return err
	}
	return &models.StoreError{Op: op, Err: err}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
