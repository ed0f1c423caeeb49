package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-spine-client/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldAnnotatedImage = "annotated_image"
	FieldAngles         = "angles"
	FieldLandmarks      = "landmarks"
	FieldImageSize      = "image_size"
)

// structFields maps the JSON names accepted by Validate to the Go field
// names go-playground expects for partial validation.
var structFields = map[string]string{
	FieldAnnotatedImage: "AnnotatedImage",
	FieldAngles:         "Angles",
	FieldLandmarks:      "Landmarks",
	FieldImageSize:      "ImageSize",
}

type AnalysisResponseValidator struct {
	validate *validator.Validate
}

func NewAnalysisResponseValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	return &AnalysisResponseValidator{validate: v}
}

// Validate checks a models.AnalysisResponse (value or pointer). When fields
// are given, only those top-level JSON fields are checked.
//
// Every failure wraps models.ErrMalformedResponse.
func (v *AnalysisResponseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AnalysisResponse:
		return v.validateResponse(ctx, &value, fields...)
	case *models.AnalysisResponse:
		if value == nil {
			return fmt.Errorf("%w: %w", models.ErrMalformedResponse, ErrNilValue)
		}
		return v.validateResponse(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AnalysisResponseValidator) validateResponse(ctx context.Context, resp *models.AnalysisResponse, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, resp)
	} else {
		names := make([]string, 0, len(fields))
		for _, field := range fields {
			name, ok := structFields[field]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, resp, names...)
	}

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", models.ErrMalformedResponse, err)
	}

	return fmt.Errorf("%w: %s", models.ErrMalformedResponse, describe(fieldErrs))
}

func describe(fieldErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldPath(fe)+" "+reason(fe))
	}
	return strings.Join(msgs, "; ")
}

// fieldPath drops the root type name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
