package validator

import (
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"jits_backend/internal/util"
)

var (
	// ^\S+@\S+\.\S+$ - та же проверка, что и на фронтенде
	basicEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	year4Pattern      = regexp.MustCompile(`^\d{4}$`)
)

// registerCustomRules регистрирует кастомные правила. Пустые значения пропускаются,
// для них есть 'required'.
func registerCustomRules(v *validator.Validate, phoneRegion string) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	if phoneRegion == "" {
		phoneRegion = "IN"
	}

	mustRegister("slug", validateSlug)
	mustRegister("basic_email", validateBasicEmail)
	mustRegister("year4", validateYear4)
	mustRegister("phone", func(fl validator.FieldLevel) bool {
		return validatePhone(fl.Field().String(), phoneRegion)
	})
}

func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return util.IsValidSlug(value)
}

func validateBasicEmail(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return basicEmailPattern.MatchString(value)
}

func validateYear4(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	return year4Pattern.MatchString(value)
}

func validatePhone(value, region string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	num, err := phonenumbers.Parse(value, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
