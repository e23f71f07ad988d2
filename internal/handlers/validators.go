package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// acctCode checks the shape of an account code: four digits with a leading 1-7.
// The match between leading digit and account type is checked by the account service.
func acctCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 4 || code[0] < '1' || code[0] > '7' {
		return false
	}
	for i := 1; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("acctcode", acctCode); err != nil {
		return fmt.Errorf("failed to register acctcode validator: %w", err)
	}
	return nil
}
