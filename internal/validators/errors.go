package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidUser        = errors.New("invalid user data")
	ErrInvalidCredentials = errors.New("invalid credentials data")
)
