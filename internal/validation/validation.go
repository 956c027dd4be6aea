package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"crackKeeper/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Error maps are keyed by the json field names the form uses.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// "required" does not trim, but the form treats whitespace-only input as
	// missing.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("trimmed_max", func(fl validator.FieldLevel) bool {
		max, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= max
	})

	return v
}

// ValidateSubmission checks submission-form data against the field rules. All
// rules run in one call, so every offending field appears in the returned map.
// An empty map means the form is valid.
func ValidateSubmission(data models.CrackFormData, hasImage bool) map[string]string {
	errs := make(map[string]string)

	if !hasImage {
		errs["image"] = "Please upload an image"
	}

	collect(validate.Struct(data), errs)

	return errs
}

// ValidateEdit checks the mutable subset of a record. Image rules do not apply:
// editing never touches the image.
func ValidateEdit(data models.CrackEditData) map[string]string {
	errs := make(map[string]string)

	collect(validate.Struct(data), errs)

	return errs
}

func HasErrors(errs map[string]string) bool {
	return len(errs) > 0
}

func collect(err error, into map[string]string) {
	if err == nil {
		return
	}

	validateErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}

	for _, fe := range validateErrs {
		into[fe.Field()] = messageFor(fe)
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "label":
		if fe.Tag() == "trimmed_max" {
			return fmt.Sprintf("Label must be %s characters or fewer", fe.Param())
		}
		return "Label is required"
	case "description":
		return "Description is required"
	case "classification":
		return "Please select a classification"
	case "location":
		return "Please select a location"
	case "datetime":
		return "Date and time is required"
	case "imageName":
		return "Image name is required"
	default:
		return fmt.Sprintf("field %s is not valid", fe.Field())
	}
}
