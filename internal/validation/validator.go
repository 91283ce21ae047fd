package validation

import (
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Accepts local ("0...") and international ("+84...") Vietnamese mobile
// numbers with 9-10 digits after the prefix.
var vnMobileRe = regexp.MustCompile(`^(0|\+84)\d{9,10}$`)

// New returns a configured validator with the custom rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("vnmobile", func(fl validatorv10.FieldLevel) bool {
		return vnMobileRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validatorv10.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}
