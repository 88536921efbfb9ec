package service

import (
	"errors"
	"fmt"

	"go-warehouse-api/pkg/validator"
)

// ErrValidation marks request-shape failures so handlers can answer 400
// instead of treating them as server errors.
var ErrValidation = errors.New("Validation failed")

func validationError(errs []*validator.ErrorResponse) error {
	firstErr := errs[0]
	return fmt.Errorf("%w: Field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
}
