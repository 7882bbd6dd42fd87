// Package validation configures gin's request validator: JSON field names in
// messages, English translations and the custom rules used by request DTOs.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/intered/portal/internal/pkg/reference"
)

var (
	usernameTag   = "username"
	usernameText  = "{0} may only contain letters, digits, dots, dashes and underscores"
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

	requiredText = "{0} is required"
)

var (
	once       sync.Once
	translator ut.Translator
	validate   *validator.Validate
)

// FieldIssue is one field-level validation problem.
type FieldIssue struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"email must be a valid email address"`
}

// Register configures gin's default validator. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		validate = v

		english := en.New()
		translator, _ = ut.New(english, english).GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, translator)

		// Use JSON tag names for errors instead of Go struct names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// References validate as their ID, or nil when Null, so `required`
		// and `omitempty` behave as they do for plain pointers.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if ref, ok := field.Interface().(reference.Ref); ok {
				if id, ok := ref.Int64(); ok {
					return id
				}
			}
			return nil
		}, reference.Ref{})

		_ = v.RegisterValidation(usernameTag, func(fl validator.FieldLevel) bool {
			return usernameRegex.MatchString(fl.Field().String())
		})
		registerTranslation(v, usernameTag, usernameText, false)
		registerTranslation(v, "required", requiredText, true)
	})
}

func registerTranslation(v *validator.Validate, tag, text string, override bool) {
	_ = v.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates s with the registered rules.
func Struct(s interface{}) error {
	Register()
	return validate.Struct(s)
}

// Issues converts a validator error into field issues. The second result is
// false when err is not a validation error.
func Issues(err error) ([]FieldIssue, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	Register()

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   fieldPath(fe),
			Message: fe.Translate(translator),
		})
	}
	return issues, true
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
