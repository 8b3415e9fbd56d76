package tools

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"fattureincloud-mcp/internal/invoicing"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report argument names as the caller spells them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind adapts a typed operation to a Handler: the raw arguments are decoded
// into T and validated before fn runs.
func bind[T, R any](fn func(context.Context, T) (R, error)) Handler {
	return func(ctx context.Context, raw map[string]any) (any, error) {
		args, err := decodeArgs[T](raw)
		if err != nil {
			return nil, err
		}
		result, err := fn(ctx, args)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

// decodeArgs converts an arguments object into T and validates it. Failures
// are reported as validation errors naming the offending arguments.
func decodeArgs[T any](raw map[string]any) (T, error) {
	var args T
	if len(raw) > 0 {
		data, err := json.Marshal(raw)
		if err != nil {
			return args, invoicing.NewValidationError("Argomenti non validi: %v", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return args, invoicing.NewValidationError("Argomenti non validi: %s", decodeMessage(err))
		}
	}
	if err := validate.Struct(args); err != nil {
		return args, validationError(err)
	}
	return args, nil
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " deve essere di tipo " + jsonKind(typeErr.Type)
	}
	return err.Error()
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "intero"
	case reflect.Float32, reflect.Float64:
		return "numero"
	case reflect.String:
		return "stringa"
	case reflect.Bool:
		return "booleano"
	case reflect.Slice, reflect.Array:
		return "lista"
	}
	return "oggetto"
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invoicing.NewValidationError("Argomenti non validi: %v", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return invoicing.NewValidationError("Argomenti non validi: %s", strings.Join(msgs, "; "))
}

// fieldPath drops the struct name from the namespace: "items[0].qty".
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " è obbligatorio"
	case "min":
		if k := fe.Kind(); k == reflect.Slice || k == reflect.Array {
			return field + " deve contenere almeno " + fe.Param() + " elementi"
		}
		return field + " deve essere almeno " + fe.Param()
	case "max":
		return field + " deve essere al massimo " + fe.Param()
	case "gt":
		return field + " deve essere maggiore di " + fe.Param()
	case "email":
		return field + " non è un indirizzo email valido"
	case "datetime":
		return field + " deve essere una data nel formato YYYY-MM-DD"
	default:
		return field + " non è valido"
	}
}
