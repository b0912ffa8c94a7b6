package httputil

import (
	"fmt"

	"github.com/spendwise-app/backend/internal/models"
)

var (
	ErrInvalidBody        = fmt.Errorf("%w: the body of your request contains invalid or un-parseable data. Please check and try again", models.ErrValidation)
	ErrRequestBodyEmpty   = fmt.Errorf("%w: the request body must not be empty", models.ErrValidation)
	ErrInvalidQueryString = fmt.Errorf("%w: the query string contains unparseable data. Please check the values", models.ErrValidation)
)
