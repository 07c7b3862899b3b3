package validator

import (
	"github.com/go-playground/validator/v10"

	"osisweb/internal/database"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// orgrole accepts only the two known organization values; public
	// question submission is the one place a client may name a role.
	v.RegisterValidation("orgrole", validateOrgRole)

	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

func validateOrgRole(fl validator.FieldLevel) bool {
	_, err := database.ParseRole(fl.Field().String())
	return err == nil
}
