package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDueDate = errors.New("invalid due date")

	registerOnce sync.Once
)

// RegisterValidators installs the custom binding rules on gin's validator and
// makes field errors report the JSON (or query) name of the field.
func RegisterValidators() {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		engine.RegisterTagNameFunc(fieldName)
		_ = engine.RegisterValidation("categorycolor", func(fl validator.FieldLevel) bool {
			return domain.IsValidCategoryColor(fl.Field().String())
		})
		_ = engine.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
			_, err := ParseDueDate(fl.Field().String())
			return err == nil
		})
	})
}

// ParseDueDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates (midnight UTC).
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Time{}, ErrInvalidDueDate
}

func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// FieldErrors flattens a binding error into per-field details. Errors that
// are not validation failures (malformed JSON, wrong types) yield nil.
func FieldErrors(err error) []apierrors.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]apierrors.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, apierrors.FieldError{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
		})
	}
	return details
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
