package helpers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUser  contextKey = "userObject"
	CartCountKey    contextKey = "cart_count"
	CSRFTemplateKey            = "csrfField"
)

var priceFormatter = accounting.Accounting{Symbol: "MAD ", Precision: 2}

func FormatPrice(amount decimal.Decimal) string {
	return priceFormatter.FormatMoneyDecimal(amount)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

func PasswordCompare(hashPass string, password []byte) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(hashPass), password); err != nil {
		return false
	}
	return true
}
