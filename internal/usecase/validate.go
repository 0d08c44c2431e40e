package usecase

import (
	"github.com/go-playground/validator/v10"

	"puentes_admin/internal/domain/entities"
)

// newEstimationValidator builds the validator used for estimation inputs.
// The structure/abutment catalogs are fixed model vocabulary, so membership
// is enforced here rather than left to the UI.
func newEstimationValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("structure_type", func(fl validator.FieldLevel) bool {
		return entities.IsValidStructureType(fl.Field().String())
	})
	_ = v.RegisterValidation("abutment_type", func(fl validator.FieldLevel) bool {
		return entities.IsValidAbutmentType(fl.Field().String())
	})
	return v
}
