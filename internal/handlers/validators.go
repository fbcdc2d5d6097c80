package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// voucherValidations are the custom binding tags used by the voucher DTOs.
var voucherValidations = map[string]validator.Func{
	"voucher_origin": func(fl validator.FieldLevel) bool {
		return domain.Origin(fl.Field().String()).IsValid()
	},
	"voucher_type": func(fl validator.FieldLevel) bool {
		return domain.VoucherType(fl.Field().String()).IsValid()
	},
	"entry_kind": func(fl validator.FieldLevel) bool {
		return domain.EntryKind(fl.Field().String()).IsValid()
	},
	"voucher_status": func(fl validator.FieldLevel) bool {
		return domain.VoucherStatus(fl.Field().String()).IsValid()
	},
	"period": func(fl validator.FieldLevel) bool {
		p := fl.Field().Int()
		return p >= 1 && p <= 12
	},
}

// RegisterValidators adds the voucher enum and period tags to gin's validator.
// It is safe to call more than once and panics if a tag cannot be registered,
// since every request binding that tag would fail otherwise.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin binding validator is not go-playground/validator")
		}
		if err := registerValidations(v, voucherValidations); err != nil {
			panic(err)
		}
	})
}

func registerValidations(v *validator.Validate, validations map[string]validator.Func) error {
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}
