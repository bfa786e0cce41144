// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	tickerRegex = regexp.MustCompile(`^[A-Z0-9.]{1,20}$`)
	phoneRegex  = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,19}$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("ticker", validateTicker)
	_ = v.RegisterValidation("phone", validatePhone)
}

// validateTicker accepts exchange symbols such as "ENGRO" or "BRK.B",
// in either case.
func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}
