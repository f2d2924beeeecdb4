package journal

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/guruwali/core"
)

var (
	typeTag  = "counseling_type"
	typeText = "must be one of Klasikal, Individual"

	aspectTag  = "counseling_aspect"
	aspectText = "must be one of Akademik, Karakter, Sosial-Emosional, Kedisiplinan, Bakat dan Minat"

	statusTag  = "counseling_status"
	statusText = "must be one of baik, perlu perhatian, butuh bantuan"
)

// InitValidators registers the journal validators.
// Only the outer surfaces validate; the store and backup imports accept records as they come.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(typeTag, func(fl validator.FieldLevel) bool {
		return CounselingType(fl.Field().String()).IsValid()
	})
	core.RegisterCustomTranslation(validate, translator, typeTag, typeText)

	_ = validate.RegisterValidation(aspectTag, func(fl validator.FieldLevel) bool {
		return CounselingAspect(fl.Field().String()).IsValid()
	})
	core.RegisterCustomTranslation(validate, translator, aspectTag, aspectText)

	_ = validate.RegisterValidation(statusTag, func(fl validator.FieldLevel) bool {
		return CounselingStatus(fl.Field().String()).IsValid()
	})
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}
