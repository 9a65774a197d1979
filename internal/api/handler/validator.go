package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
)

// emailPattern is the restrictive local@domain.tld shape; consecutive dots
// and multiple @ signs are checked separately because RE2 has no lookahead.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSpecials = "!@#$%^&*()_+{}[]|:;,.<>?~`/-"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Unlike a first-error validator it accumulates every violated rule into a
// single domain.ValidationError, so a signup response lists all problems at once.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("strict_email", strictEmail)
	_ = v.RegisterValidation("password_complexity", passwordComplexity)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return domain.NewValidationError(msgs...)
}

// strictEmail enforces the restrictive pattern: single @, no consecutive
// dots, standard local/domain shape.
func strictEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	if strings.Count(email, "@") != 1 {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	return emailPattern.MatchString(email)
}

// passwordComplexity requires at least one lowercase letter, one uppercase
// letter, one digit, and one symbol from the defined special-character set.
func passwordComplexity(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// fieldError converts a single ValidationError into the message the client sees.
func fieldError(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "strict_email":
		return "email must follow a valid pattern (e.g. example@domain.com)"
	case "password_complexity":
		return "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	case "eqfield":
		return "password and confirm password do not match"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ConfirmPassword":
		return "confirmPassword"
	default:
		return strings.ToLower(structField[:1]) + structField[1:]
	}
}
