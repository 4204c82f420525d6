// Package validator wraps the go-playground/validator library.
// Error messages are translated to English and field names
// are taken from the "json" struct tags.
package validator

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

const anonymousField = "__nested__"

// Rule is a custom validation rule.
type Rule struct {
	Tag          string
	Func         validator.Func
	ErrorMsgFunc ErrorMsgFunc
}

type ErrorMsgFunc func(fe validator.FieldError) string

type Validator interface {
	Validate(ctx context.Context, value any) error
	ValidateValue(value any, tag string) error
	ValidateCtx(ctx context.Context, value any, tag string, namespace string) error
}

type wrapper struct {
	validator    *validator.Validate
	translator   ut.Translator
	errorMsgFunc map[string]ErrorMsgFunc
}

func New(rules ...Rule) Validator {
	v := &wrapper{validator: validator.New(), errorMsgFunc: make(map[string]ErrorMsgFunc)}

	// Register the default EN translator
	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(errors.New("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(v.validator, translator); err != nil {
		panic(errors.Errorf("translator was not registered: %w", err))
	}
	v.translator = translator

	// Register custom rules
	for _, rule := range rules {
		if err := v.validator.RegisterValidation(rule.Tag, rule.Func); err != nil {
			panic(err)
		}
		if rule.ErrorMsgFunc != nil {
			v.errorMsgFunc[rule.Tag] = rule.ErrorMsgFunc
		}
	}

	// Use the JSON field name in error messages,
	// mark anonymous fields, so they can be removed from the error namespace
	v.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if fld.Anonymous {
			return anonymousField
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

func (v *wrapper) Validate(ctx context.Context, value any) error {
	return v.ValidateCtx(ctx, value, "dive", "")
}

func (v *wrapper) ValidateValue(value any, tag string) error {
	return v.ValidateCtx(context.Background(), value, tag, "")
}

func (v *wrapper) ValidateCtx(ctx context.Context, value any, tag string, namespace string) error {
	if err := v.validator.VarCtx(ctx, value, tag); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.processError(validationErrs, namespace)
		}
		panic(err)
	}
	return nil
}

func (v *wrapper) processError(err validator.ValidationErrors, namespace string) error {
	errs := errors.NewMultiError()
	for _, e := range err {
		errs.Append(errors.New(v.formatError(e, namespace)))
	}
	return errs.ErrorOrNil()
}

func (v *wrapper) formatError(e validator.FieldError, namespace string) string {
	// Error message without the field name
	var msg string
	if fn, found := v.errorMsgFunc[e.Tag()]; found {
		msg = fn(e)
	} else {
		msg = strings.TrimSpace(strings.TrimPrefix(e.Translate(v.translator), e.Field()))
	}

	// Compose the full field name from the parameter, the field namespace and the field name
	parts := make([]string, 0, 3)
	if namespace != "" {
		parts = append(parts, namespace)
	}
	if fieldNamespace := processNamespace(e.Namespace()); fieldNamespace != "" {
		parts = append(parts, fieldNamespace)
	}
	if field := e.Field(); field != "" && field != anonymousField {
		parts = append(parts, field)
	}

	if len(parts) == 0 {
		return msg
	}
	return `"` + strings.Join(parts, ".") + `" ` + msg
}

// processNamespace removes the value type name (first part), the field name (last part)
// and anonymous fields from the error namespace.
func processNamespace(namespace string) string {
	namespace = strings.ReplaceAll(namespace, anonymousField+".", "")
	parts := strings.Split(namespace, ".")
	if len(parts) <= 2 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], ".")
}
