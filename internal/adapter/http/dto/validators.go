package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stellar/go/strkey"
)

// Shape only; precision and range are enforced by the network.
var amountRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the custom rules to v.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("stellar_address", validateStellarAddress)
	_ = v.RegisterValidation("stellar_amount", validateStellarAmount)
}

// validateStellarAddress accepts G... account IDs with a valid checksum.
func validateStellarAddress(fl validator.FieldLevel) bool {
	return strkey.IsValidEd25519PublicKey(fl.Field().String())
}

// validateStellarAmount accepts unsigned decimal strings.
func validateStellarAmount(fl validator.FieldLevel) bool {
	return amountRe.MatchString(fl.Field().String())
}
