// Package validator adapts go-playground/validator to echo and to the domain validation error.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"resq/config"
	domainerrors "resq/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// passwordTag is the struct tag of the password strength rule.
	passwordTag = "password"
	// notBlankTag rejects strings made only of whitespace.
	notBlankTag = "notblank"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
	policy   config.PasswordStrengthConfig
}

// New builds a validator enforcing the given password policy. A nil policy falls back to
// the defaults applied by config.
func New(policy *config.PasswordStrengthConfig) *CustomValidator {
	if policy == nil {
		cfg := &config.Config{}
		cfg.ApplyDefaults()
		policy = cfg.PasswordStrength
	}

	cv := &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		policy:   *policy,
	}

	// Report fields by their JSON (or path parameter) name.
	cv.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	// Registration only fails for an empty tag or nil func.
	_ = cv.validate.RegisterValidation(passwordTag, func(fl validator.FieldLevel) bool {
		return cv.StrongPassword(fl.Field().String())
	})
	_ = cv.validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return cv
}

// Validate checks i and reports every violated field at once.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate payload")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: cv.message(fe),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// StrongPassword reports whether password satisfies the configured policy.
// Length is counted in bytes because that is what bcrypt limits.
func (cv *CustomValidator) StrongPassword(password string) bool {
	p := cv.policy
	if len(password) < p.MinLength || (p.MaxLength > 0 && len(password) > p.MaxLength) {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	return (!p.RequireUppercase || upper) &&
		(!p.RequireLowercase || lower) &&
		(!p.RequireNumbers || digit) &&
		(!p.RequireSpecial || special)
}

// PasswordPolicy describes the password rule in words.
func (cv *CustomValidator) PasswordPolicy() string {
	p := cv.policy
	var needs []string
	if p.RequireUppercase {
		needs = append(needs, "an uppercase letter")
	}
	if p.RequireLowercase {
		needs = append(needs, "a lowercase letter")
	}
	if p.RequireNumbers {
		needs = append(needs, "a number")
	}
	if p.RequireSpecial {
		needs = append(needs, "a special character")
	}

	msg := fmt.Sprintf("password must be %d to %d characters long", p.MinLength, p.MaxLength)
	if len(needs) > 0 {
		msg += " and contain " + strings.Join(needs, ", ")
	}

	return msg
}

func (cv *CustomValidator) message(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case notBlankTag:
		return field + " must not be blank"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case passwordTag:
		return cv.PasswordPolicy()
	default:
		return field + " is invalid"
	}
}

// fieldPath drops the top-level struct name from the namespace, e.g. "skills[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}
