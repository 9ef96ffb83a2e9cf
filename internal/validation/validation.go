package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
)

// DateLayout is the only accepted request date format.
const DateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, value)
	}
	return t, nil
}

// Struct runs the tag rules of req and converts failures into an Error.
func Struct(ctx context.Context, req any) error {
	err := validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		key := fieldPath(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = getErrorMessage(fe)
		}
	}
	return &Error{Fields: fields}
}

// fieldPath strips the struct name from the namespace, so
// "VaRRequest.stocks[0].ticker" becomes "stocks[0].ticker".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func getErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicate %s values", field, strings.ToLower(fe.Param()))
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// validatePeriod checks that both dates parse and start is not after end.
func validatePeriod(start, end string) error {
	startDate, err := ParseDate(start)
	if err != nil {
		return fieldError("startDate", err.Error())
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return fieldError("endDate", err.Error())
	}
	if endDate.Before(startDate) {
		return &Error{Fields: map[string]string{
			"endDate": fmt.Sprintf("%s: endDate must not be before startDate", apperrors.ErrInvalidDateRange),
		}}
	}
	return nil
}
