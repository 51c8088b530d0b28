package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid marks input rejected by validation.
var ErrInvalid = errors.New("validation failed")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their label tag so messages match what the user typed.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		label := field.Tag.Get("label")
		if label == "" {
			return field.Name
		}
		return label
	})

	_ = validate.RegisterValidation("finite", isFinite)
}

// isFinite rejects NaN and ±Inf floats. Other kinds pass.
func isFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// Struct validates v against its `validate` tags. Failures wrap ErrInvalid
// and list one message per field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		messages = append(messages, message(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}

// Finite rejects NaN and ±Inf for a single number reported under label.
func Finite(label string, v float64) error {
	if validate.Var(v, "finite") != nil {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalid, label)
	}
	return nil
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "required_if":
		// param is "<Field> <value>"
		parts := strings.Fields(e.Param())
		return fmt.Sprintf("%s is required for %s targets", e.Field(), parts[len(parts)-1])
	case "finite":
		return fmt.Sprintf("%s must be a finite number", e.Field())
	case "ne":
		return fmt.Sprintf("%s must not be %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s is too long (max %s characters)", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag())
	}
}
