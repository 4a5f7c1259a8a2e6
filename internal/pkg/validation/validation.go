// Package validation validates request payloads with go-playground/validator
// and converts failures into entity.ValidationErrors with client-facing messages.
//
// Two custom tags bound text length by configurable limits:
//
//	shorttext  at most Limits.ShortMax characters
//	longtext   at most Limits.LongMax characters
//
// and "isodate" accepts a YYYY-MM-DD date.
// Field names in errors are taken from the json tag.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"articles-api/internal/domain/entity"
	"articles-api/internal/utils/text"
)

// Limits bounds the length of text fields, counted in characters.
type Limits struct {
	ShortMax int
	LongMax  int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{ShortMax: 50, LongMax: 500}
}

// Validator wraps a configured validator.Validate.
type Validator struct {
	validate *validator.Validate
	limits   Limits
}

// New creates a Validator with the custom tags registered.
func New(limits Limits) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーのフィールド名は JSON のキー名を使う
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// 登録に失敗するのはタグ名が空のときだけ
	_ = v.RegisterValidation("shorttext", maxChars(limits.ShortMax))
	_ = v.RegisterValidation("longtext", maxChars(limits.LongMax))
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entity.BirthDateLayout, fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v, limits: limits}
}

func maxChars(limit int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return text.WithinLimit(fl.Field().String(), limit)
	}
}

// Struct validates s and returns entity.ValidationErrors when any field fails.
func (v *Validator) Struct(s any) error {
	return v.convert(v.validate.Struct(s))
}

func (v *Validator) convert(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError はプログラミングミス
		return err
	}
	out := make(entity.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &entity.ValidationError{Field: fe.Field(), Message: v.message(fe)})
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "shorttext":
		return fmt.Sprintf("must not exceed %d characters", v.limits.ShortMax)
	case "longtext":
		return fmt.Sprintf("must not exceed %d characters", v.limits.LongMax)
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
