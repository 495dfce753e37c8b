// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-bff/models"
	"github.com/go-playground/validator/v10"
)

// Struct field names accepted for field-level scoping.
const (
	FieldUsername = "Username"
	FieldEmail    = "Email"
	FieldPassword = "Password"
)

// UserValidator checks [models.NewUser] and [models.Credentials] against the
// `validate` tags declared on them.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	return &UserValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validateStruct(ErrInvalidUser, value, fields...)
	case *models.NewUser:
		if value == nil {
			return ErrInvalidUser
		}
		return v.validateStruct(ErrInvalidUser, *value, fields...)

	case models.Credentials:
		return v.validateStruct(ErrInvalidCredentials, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrInvalidCredentials
		}
		return v.validateStruct(ErrInvalidCredentials, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateStruct(kind error, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", kind, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("%w: %s", kind, strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "contains":
		return fmt.Sprintf("%s must contain %q", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
