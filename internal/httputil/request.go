package httputil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/internal/models"
)

// BindData binds the JSON body of the request to data, which must be a pointer.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", models.ErrValidation, ValidationMessage(validationErrors))
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// BindQuery binds the query string of the request to data, which must be a pointer.
func BindQuery(c *gin.Context, data any) error {
	err := c.ShouldBindQuery(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", models.ErrValidation, ValidationMessage(validationErrors))
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return fmt.Errorf("%w: %s", ErrInvalidQueryString, err.Error())
}

// ValidationErrorToText returns a human readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of '%s'", e.Field(), strings.ReplaceAll(e.Param(), " ", "', '"))
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// ValidationMessage joins the messages for all failed validations.
func ValidationMessage(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, ValidationErrorToText(e))
	}

	return strings.Join(messages, ", ")
}
