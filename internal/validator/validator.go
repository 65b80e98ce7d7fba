// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendsmart/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("challenge_type", validateChallengeType)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateChallengeType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "savings", "spending":
		return true
	}
	return false
}

// validateISODate accepts only zero-padded YYYY-MM-DD dates. The whole engine
// compares dates as strings, so anything looser would corrupt range queries.
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	parsed, err := time.Parse(models.ISODate, value)
	return err == nil && parsed.Format(models.ISODate) == value
}
