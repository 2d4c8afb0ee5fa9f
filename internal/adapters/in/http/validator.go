package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator implements echo.Validator over the validate tags of the API models.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator registers the "phone" rule and reports fields by their JSON names.
func NewRequestValidator() (*RequestValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return kernel.IsValidPhone(strings.TrimSpace(fl.Field().String()))
	})
	if err != nil {
		return nil, err
	}

	return &RequestValidator{validate: v}, nil
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, fieldError(fe))
	}
	return errors.Join(fieldErrs...)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errs.NewValueIsRequiredError(fe.Field())
	case "max":
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(),
			fmt.Errorf("length should be less or equal than %s", fe.Param()))
	case "gt":
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(),
			fmt.Errorf("should be greater than %s", fe.Param()))
	default:
		return errs.NewValueIsInvalidError(fe.Field())
	}
}

// bindAndValidate decodes the request body into body and runs the echo validator.
// Decoding failures are reported as an invalid request body.
func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", unwrapBindError(err))
	}
	return ctx.Validate(body)
}

func unwrapBindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		return httpErr.Internal
	}
	return err
}
