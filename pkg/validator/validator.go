package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"emergencyAPI/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	RegisterCustomValidations(validate)
}

func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("lat", validateLat)
	_ = v.RegisterValidation("lng", validateLng)
	_ = v.RegisterValidation("latstr", validateLatString)
	_ = v.RegisterValidation("lngstr", validateLngString)
	_ = v.RegisterValidation("emergency_level", validateEmergencyLevel)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateLatString(fl validator.FieldLevel) bool {
	v, ok := parseFloat(fl.Field().String())
	return ok && v >= -90.0 && v <= 90.0
}

func validateLngString(fl validator.FieldLevel) bool {
	v, ok := parseFloat(fl.Field().String())
	return ok && v >= -180.0 && v <= 180.0
}

func validateEmergencyLevel(fl validator.FieldLevel) bool {
	_, err := domain.ParseEmergencyLevel(fl.Field().String())
	return err == nil
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != v {
		return 0, false
	}
	return v, true
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Messages turns a validation failure into one line per field. Other
// errors come back as a single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lat", "latstr":
		return fmt.Sprintf("%s must be a latitude between -90 and 90", field)
	case "lng", "lngstr":
		return fmt.Sprintf("%s must be a longitude between -180 and 180", field)
	case "emergency_level":
		return fmt.Sprintf("%s must be one of low, medium, high, critical", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
