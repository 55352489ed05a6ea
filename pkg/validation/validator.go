package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON (or form) tag names in errors.
// - Registers alias tags used by the request structs.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(tagName)
		v.RegisterAlias("positive", "min=1")
	}
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// IsFieldError reports whether err points at specific fields (validation
// failures or a mistyped field) rather than at the body as a whole.
func IsFieldError(err error) bool {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return ute.Field != ""
	}
	var sve binding.SliceValidationError
	var verrs validator.ValidationErrors
	return errors.As(err, &sve) || errors.As(err, &verrs)
}

// ToDetails converts validation/binding errors into a map[field]message suitable for the error detail.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	if errors.As(err, &se) {
		return map[string]string{"payload": "invalid json"}
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		if ute.Field == "" {
			return map[string]string{"payload": "unexpected " + ute.Value}
		}
		return map[string]string{ute.Field: "must be " + kindName(ute.Type.Kind())}
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return map[string]string{"query": fmt.Sprintf("%q is not a valid number", ne.Num)}
	}

	out := map[string]string{}
	collect(err, out)
	if len(out) > 0 {
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

// collect flattens validator errors, including gin's per-element slice errors.
func collect(err error, out map[string]string) {
	var sve binding.SliceValidationError
	if errors.As(err, &sve) {
		for _, e := range sve {
			collect(e, out)
		}
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
	}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "positive":
		return "must be a positive integer"
	case "email":
		return "must be a valid email"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "numeric", "number":
		return "must be numeric"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func kindName(k reflect.Kind) string {
	switch {
	case isNumberKind(k):
		return "a number"
	case k == reflect.String:
		return "a string"
	case k == reflect.Slice || k == reflect.Array:
		return "an array"
	case k == reflect.Struct || k == reflect.Map:
		return "an object"
	case k == reflect.Bool:
		return "a boolean"
	default:
		return "of a different type"
	}
}
