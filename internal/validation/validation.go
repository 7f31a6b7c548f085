// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required fields or
// date formats) defined in struct tags and extracts validation errors into a
// format the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DateLayout is the wire format of a calendar date.
	DateLayout = "2006-01-02"

	// MonthLayout is the wire format of a calendar month.
	MonthLayout = "2006-01"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom tags registered:
//
//	isodate   "2024-05-31"
//	yearmonth "2024-05"
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(wireName)
		mustRegister(validate, "isodate", layoutValidator(DateLayout))
		mustRegister(validate, "yearmonth", layoutValidator(MonthLayout))
	})
	return validate
}

// mustRegister panics when tag cannot be registered, so a broken tag fails
// at startup instead of on the first request that uses it.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates v with the shared validator.
func Struct(v any) error {
	return Validator().Struct(v)
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != len(layout) {
			return false
		}
		_, err := time.Parse(layout, value)
		return err == nil
	}
}

// wireName reports a field under the name the client sent it with, so field
// errors read "workPhaseId" rather than "WorkPhaseID".
func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}
