package handlers

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum validators used in binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	validators := map[string]validator.Func{
		"currency": func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseCurrency(fl.Field().String())
			return ok
		},
		"txtype": func(fl validator.FieldLevel) bool {
			return domain.TransactionType(normalize(fl.Field().String())).IsValid()
		},
		"movtype": func(fl validator.FieldLevel) bool {
			return domain.MovementType(normalize(fl.Field().String())).IsValid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
