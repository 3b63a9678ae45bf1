package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используем имя поля из json тега
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return v
}

// Struct проверяет структуру по тегам validate
// Ошибки полей собираются в одно сообщение вида "email must be a valid email address; slug is required"
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min", "gte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max", "lte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, err.Param())
	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", field, err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s failed %s", field, err.Tag())
	}
}
