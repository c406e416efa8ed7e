package characters

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"characters_back/catalog"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the notblank rule and reports fields by their JSON
// names. It is safe to call more than once.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes the request body into dst. Malformed bodies become
// InvalidData; constraint failures become one aggregated validation error.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]catalog.Violation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, catalog.Violation{
				Field:   fe.Field(),
				Message: violationMessage(dst, fe),
			})
		}
		return catalog.NewValidationError(violations)
	}

	return catalog.InvalidData("request body is not valid JSON")
}

func violationMessage(dst any, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "min", "max":
		lo, hi := lengthBounds(dst, fe.StructField())
		switch {
		case lo != "" && hi != "":
			return fmt.Sprintf("must be between %s and %s characters", lo, hi)
		case fe.Tag() == "min":
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}

// lengthBounds reads the min and max params declared on a struct field's
// binding tag.
func lengthBounds(dst any, structField string) (lo, hi string) {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", ""
	}
	field, ok := t.FieldByName(structField)
	if !ok {
		return "", ""
	}
	for _, rule := range strings.Split(field.Tag.Get("binding"), ",") {
		name, param, found := strings.Cut(rule, "=")
		if !found {
			continue
		}
		switch name {
		case "min":
			lo = param
		case "max":
			hi = param
		}
	}
	return lo, hi
}
