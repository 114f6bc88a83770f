// Package validation checks decoded request documents against the struct
// tags of their schema type using go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	return translate(e)
}

// Errors is returned when a document does not satisfy its schema.
type Errors []FieldError

func (es Errors) Error() string {
	if len(es) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Get returns the shared validator. Field names in errors follow the json tag.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s and returns Errors on failure.
func Struct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "unknown", Tag: "unknown", Param: err.Error()}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

var messages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"unique":   "%s must not contain duplicates",
}

var messagesWithParam = map[string]string{
	"min": "%s must contain at least %s",
	"gt":  "%s must be greater than %s",
	"max": "%s must contain at most %s",
}

func translate(e FieldError) string {
	if tmpl, ok := messages[e.Tag]; ok {
		return fmt.Sprintf(tmpl, e.Field)
	}
	if tmpl, ok := messagesWithParam[e.Tag]; ok {
		return fmt.Sprintf(tmpl, e.Field, e.Param)
	}
	if e.Tag == "unknown" {
		return e.Param
	}
	return fmt.Sprintf("%s failed %s validation", e.Field, e.Tag)
}
