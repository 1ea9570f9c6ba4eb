// Package validation checks decoded request payloads and path parameters
// using go-playground/validator with the directory's custom rules.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	employeeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,100}$`)
)

func init() {
	// Report json field names so messages match what the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// employee_id accepts the ids the directory generates (uuids) and any
	// letters, digits, hyphens and underscores a seeded store may carry.
	err := validate.RegisterValidation("employee_id", func(fl validator.FieldLevel) bool {
		if fl.Field().String() == "" {
			return true
		}

		return employeeIDPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register custom validation: %v", err))
	}
}

// ValidationError holds one message per failed field.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct validates s against its `validate` tags.
// Failures are returned as *ValidationError.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return toValidationError(err)
	}

	return nil
}

// ValidateID checks an employee id taken from a request path.
func ValidateID(id string) error {
	if err := validate.Var(id, "required,employee_id"); err != nil {
		return toValidationError(err, "employeeId")
	}

	return nil
}

func toValidationError(err error, fieldName ...string) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Errors: []string{err.Error()}}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if field == "" && len(fieldName) > 0 {
			field = fieldName[0]
		}

		var message string

		switch fe.Tag() {
		case "employee_id":
			message = fmt.Sprintf(
				"field '%s' must contain only letters, numbers, hyphens, and underscores",
				field,
			)
		default:
			message = fmt.Sprintf("field '%s' failed on the '%s' tag", field, fe.Tag())
		}

		messages = append(messages, message)
	}

	return &ValidationError{Errors: messages}
}
