package validation

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const CodeValidationFailed = "VALIDATION_FAILED"

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldMessenger lets a request type override the message reported for a
// field. Keys are "field.rule" or just "field".
type FieldMessenger interface {
	FieldMessages() map[string]string
}

var (
	setupOnce sync.Once
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
)

// Setup registers the custom rules and field naming on gin's validator.
// It is safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("digits", validateDigits)
	})
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// validateDigits accepts unsigned base-10 integers that fit in an int.
func validateDigits(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	if !digitsRe.MatchString(s) {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// Normalizer is implemented by request types that rewrite their fields
// (trimming, Unicode normalization) before the rules are checked.
type Normalizer interface {
	Normalize()
}

// BindAndValidate binds the body according to its content type (form or
// JSON) and reports every violated rule at once as a 400. Request types
// implementing Normalizer are validated after normalization.
func BindAndValidate(c *gin.Context, dst any) bool {
	Setup()

	err := c.ShouldBind(dst)

	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST_BODY",
			Message: "invalid request body",
			Errors: []FieldError{
				{
					Field:   "",
					Rule:    "syntax",
					Message: err.Error(),
				},
			},
		})
		return false
	}

	// The body decoded, so dst is populated even if the rules failed.
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
		err = binding.Validator.ValidateStruct(dst)
	}

	if err != nil {
		verrs = nil
		if errors.As(err, &verrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(verrs, dst))
			return false
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidationFailed,
			Message: err.Error(),
		})
		return false
	}

	return true
}

func FormatValidationErrors(verrs validator.ValidationErrors, dst any) ErrorResponse {
	var custom map[string]string
	if m, ok := dst.(FieldMessenger); ok {
		custom = m.FieldMessages()
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: buildMessage(fe, custom),
		})
	}

	return ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Errors:  fields,
	}
}

func buildMessage(fe validator.FieldError, custom map[string]string) string {
	field := fe.Field()
	if msg, ok := custom[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := custom[field]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "digits":
		return field + " must be a whole number"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
