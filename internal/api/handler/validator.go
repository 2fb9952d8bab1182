package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

// requestValidator adapts go-playground/validator to echo.Validator and adds
// the studio tags:
//
//	role            one of the domain roles
//	session_status  one of the session lifecycle states
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator for echo.Echo.Validator. Messages name
// fields by their json tag.
func NewValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("session_status", func(fl validator.FieldLevel) bool {
		return domain.SessionStatus(fl.Field().String()).Valid()
	})
	return &requestValidator{v: v}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, len(ve))
	for n, fe := range ve {
		msgs[n] = describe(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "role":
		return fmt.Sprintf("%s must be %q or %q", field, domain.RoleAdmin, domain.RoleStaff)
	case "session_status":
		return fmt.Sprintf("%s must be one of: %s, %s, %s, %s, %s", field,
			domain.SessionPlanned, domain.SessionScheduled, domain.SessionInProgress,
			domain.SessionCompleted, domain.SessionCancelled)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
