package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("tag_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started or ended with a hyphen
				if (i == 0 || i == len(value)-1) && char == '-' {
					return false
				}
				// Lowercase letters, digits or hyphen
				if !unicode.IsLower(char) && !unicode.IsDigit(char) && char != '-' {
					return false
				}
			}
			return true
		})
	})
}

func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
