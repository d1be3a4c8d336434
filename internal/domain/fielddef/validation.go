package fielddef

import (
	"fmt"

	"github.com/marcos-nsantos/geobounds-service/internal/domain"
)

type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	switch e.Err {
	case domain.ErrTypeMismatch:
		return "Expected an instance of Geobounds"
	case domain.ErrMissingRequiredValue:
		return fmt.Sprintf("Empty mandatory field [ %s ]", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
