package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
)

// Validator runs struct-tag presence checks on bound payloads. Failures
// surface as 400s through the central error handler.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}
