package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/backend/internal/httputil"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
)

// RegisterLocaleRoutes registers the routes for the locale selection with
// the RouterGroup that is passed.
func (co Controller) RegisterLocaleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsLocale)
	r.GET("", co.GetLocale)
	r.PUT("", co.SetLocale)
}

// RegisterTranslationRoutes registers the routes for translations with
// the RouterGroup that is passed.
func (co Controller) RegisterTranslationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTranslations)
	r.GET("", GetTranslations)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Locale
// @Success		204
// @Router			/v1/locale [options]
func OptionsLocale(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Locale
// @Success		204
// @Router			/v1/translations [options]
func OptionsTranslations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get locale
// @Description	Returns the locale selected by the user. Without a selection, the default locale is returned.
// @Tags			Locale
// @Produce		json
// @Success		200	{object}	LocaleResponse
// @Failure		503	{object}	LocaleResponse
// @Router			/v1/locale [get]
func (co Controller) GetLocale(c *gin.Context) {
	l, selected, err := co.Profiles.Selected(ctx(c), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LocaleResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LocaleResponse{Data: &Locale{
		Locale:    l,
		Selected:  selected,
		Supported: i18n.Supported(),
	}})
}

// @Summary		Set locale
// @Description	Persists the locale selection of the user
// @Tags			Locale
// @Accept			json
// @Produce		json
// @Success		200		{object}	LocaleResponse
// @Failure		400		{object}	LocaleResponse
// @Failure		503		{object}	LocaleResponse
// @Param			locale	body		LocaleEditable	true	"Locale"
// @Router			/v1/locale [put]
func (co Controller) SetLocale(c *gin.Context) {
	var editable LocaleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LocaleResponse{
			Error: &s,
		})
		return
	}

	l, err := i18n.ParseLocale(editable.Locale)
	if err != nil {
		s := models.ErrLocaleInvalid.Error()
		c.JSON(http.StatusBadRequest, LocaleResponse{
			Error: &s,
		})
		return
	}

	err = co.Profiles.SetLocale(ctx(c), userID(c), l)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LocaleResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LocaleResponse{Data: &Locale{
		Locale:    l,
		Selected:  true,
		Supported: i18n.Supported(),
	}})
}

// @Summary		Get translations
// @Description	Returns the translation table for the locale of the request.
// @Description	The locale is taken from the "locale" query parameter, the selection of the user,
// @Description	the Accept-Language header or the default, in this order.
// @Tags			Locale
// @Produce		json
// @Success		200		{object}	TranslationsResponse
// @Param			locale	query	string	false	"Locale code"
// @Router			/v1/translations [get]
func GetTranslations(c *gin.Context) {
	l := locale(c)

	c.JSON(http.StatusOK, TranslationsResponse{Data: &Translations{
		Locale:       l,
		Translations: i18n.Table(l),
	}})
}
