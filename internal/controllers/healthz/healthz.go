// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"context"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendwise-app/backend/internal/httputil"
	"github.com/spendwise-app/backend/internal/models"
)

// Pinger checks the connection to the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPError struct {
	Error string `json:"error" example:"there is a problem with the database connection"`
}

func RegisterRoutes(r *gin.RouterGroup, db Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	HTTPError
// @Router			/healthz [get]
func Get(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Ping(c.Request.Context())
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, HTTPError{
				Error: models.ErrStoreUnavailable.Error(),
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
