package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Struct tags understood by Struct in addition to the validator built-ins.
const (
	TagColorHex       = "colorhex"
	TagUUIDText       = "uuidtext"
	TagUUIDCollection = "uuidjson"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation(TagColorHex, func(fl validator.FieldLevel) bool {
		_, err := ColorHex(fieldString(fl))
		return err == nil
	})
	_ = v.RegisterValidation(TagUUIDText, func(fl validator.FieldLevel) bool {
		return UUID(fieldString(fl)) == nil
	})
	_ = v.RegisterValidation(TagUUIDCollection, func(fl validator.FieldLevel) bool {
		_, err := UUIDCollection(fieldString(fl))
		return err == nil
	})

	return v
}

func fieldString(fl validator.FieldLevel) string {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return fmt.Sprint(field.Interface())
	}
	return field.String()
}

func valueString(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}

// Struct validates v against its `validate` tags and returns the first failure as a *FormatError.
func Struct(v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &FormatError{Reason: err.Error()}
	}

	fe := fieldErrs[0]
	value := valueString(fe.Value())

	// Re-run the domain check so the caller sees the precise reason.
	var cause error
	switch fe.Tag() {
	case TagColorHex:
		_, cause = ColorHex(value)
	case TagUUIDText:
		cause = UUID(value)
	case TagUUIDCollection:
		_, cause = UUIDCollection(value)
	}
	if cause != nil {
		return WithField(cause, fe.Field())
	}

	return &FormatError{Field: fe.Field(), Value: value, Reason: fmt.Sprintf("failed '%s' check", fe.Tag())}
}
