package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const (
	codeLength = 5
	// bcrypt ignores everything past this many bytes
	maxPasswordBytes = 72
	dobLayout        = "2006-01-02"
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("period", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == entity.PeriodAM || value == entity.PeriodPM
		})
		// Verification codes are exactly five digits
		validate.RegisterValidation("otp", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != codeLength {
				return false
			}
			for _, char := range value {
				if !unicode.IsDigit(char) {
					return false
				}
			}
			return true
		})
		// max counts runes, bcrypt counts bytes
		validate.RegisterValidation("pwbytes", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= maxPasswordBytes
		})
		validate.RegisterValidation("dob", func(fl validator.FieldLevel) bool {
			dob, err := time.Parse(dobLayout, fl.Field().String())
			if err != nil {
				return false
			}
			return dob.Year() >= 1900 && !dob.After(time.Now())
		})
	})
}

// validateStruct runs the validator and turns field errors into one readable ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "period":
		return field + " must be AM or PM"
	case "pwbytes":
		return fmt.Sprintf("%s must be at most %d bytes", field, maxPasswordBytes)
	case "dob":
		return field + " must be a past date in YYYY-MM-DD format"
	case "otp":
		return fmt.Sprintf("%s must be a %d-digit code", field, codeLength)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
