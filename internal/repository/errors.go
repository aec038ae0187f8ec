package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/apperrors"
)

const uniqueViolation = "23505"

// Known unique constraints, mapped to the field the caller should surface.
var constraintFields = map[string]string{
	"idx_accounts_email":  "email",
	"idx_accounts_phone":  "phone",
	"idx_accounts_handle": "handle",
	"idx_profile_label":   "label",
	"idx_worker_document": "document_number",
}

// translate converts gorm and postgres driver errors into the application
// error taxonomy. Anything unrecognized is treated as a storage failure.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("record not found")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		field := constraintFields[pqErr.Constraint]
		return apperrors.Conflict(field, "a record with this value already exists")
	}

	return apperrors.Storage(err)
}
