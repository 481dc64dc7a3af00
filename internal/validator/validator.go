// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayouts are the accepted record date formats, tried in order.
var DateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// MonthLayout is the accepted month filter format.
const MonthLayout = "2006-01"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("record_date", validateRecordDate)
	_ = v.RegisterValidation("month", validateMonth)
}

// ParseDate parses s using the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validateRecordDate(fl validator.FieldLevel) bool {
	_, ok := ParseDate(fl.Field().String())
	return ok
}

func validateMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(MonthLayout, fl.Field().String())
	return err == nil
}
