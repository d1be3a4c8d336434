package domain

import "errors"

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrVersionNotFound      = errors.New("version not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrMissingRequiredValue = errors.New("missing required value")
	ErrInvalidCSV           = errors.New("invalid csv")
)
