package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/httputil"
	"github.com/pocketpilot/backend/internal/models"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:userId", OptionsProfileDetail)
	r.GET("/:userId", GetProfile)
	r.PUT("/:userId", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/profiles/{userId} [options]
func OptionsProfileDetail(c *gin.Context) {
	var uri URIUserID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Get profile
// @Description	Returns the profile of a user
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/profiles/{userId} [get]
func GetProfile(c *gin.Context) {
	var uri URIUserID
	if err := c.ShouldBindUri(&uri); err != nil {
		message := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &message})
		return
	}

	var profile models.Profile
	err := models.DB.First(&profile, "user_id = ?", uri.UserID).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &message})
		return
	}

	apiResource := newProfile(profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Update profile
// @Description	Creates or replaces the profile of a user
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{userId} [put]
func UpdateProfile(c *gin.Context) {
	var uri URIUserID
	if err := c.ShouldBindUri(&uri); err != nil {
		message := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &message})
		return
	}

	var editable ProfileEditable
	if err := httputil.BindData(c, &editable); err != nil {
		message := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &message})
		return
	}

	userID := uuid.MustParse(uri.UserID)

	var profile models.Profile
	err := models.DB.First(&profile, "user_id = ?", userID).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		message := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &message})
		return
	}

	profile.UserID = userID
	profile.Currency = editable.Currency
	profile.Payday = editable.Payday
	profile.FixedCategories = editable.FixedCategories

	err = models.DB.Save(&profile).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &message})
		return
	}

	apiResource := newProfile(profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}
