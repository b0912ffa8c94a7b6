package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/backend/internal/httputil"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", co.GetProfile)
	r.PATCH("", co.UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the user. Users without a profile get an empty one.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		503	{object}	ProfileResponse
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	p, err := co.Profiles.Get(ctx(c), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, p)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates the profile of the user. Only values to be updated need to be specified.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		503		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func (co Controller) UpdateProfile(c *gin.Context) {
	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	var editable ProfileEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	p, err := co.Profiles.Update(ctx(c), userID(c), editable.patch(updateFields))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, p)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}
