package v1

import (
	"github.com/pocketpilot/backend/internal/models"
)

type ProfileEditable struct {
	Currency string `json:"currency" example:"EUR" default:"USD"`
	Payday   int    `json:"payday" example:"25" minimum:"0" maximum:"31" default:"0"`

	// FixedCategories holds comma-separated glob patterns for recurring
	// fixed-cost categories.
	FixedCategories string `json:"fixedCategories" example:"rent*,utilit*,insurance" default:""`
}

type Profile struct {
	models.DefaultModel
	UserID string `json:"userId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	ProfileEditable
}

// newProfile returns the API representation of the resource.
func newProfile(model models.Profile) Profile {
	return Profile{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID.String(),
		ProfileEditable: ProfileEditable{
			Currency:        model.Currency,
			Payday:          model.Payday,
			FixedCategories: model.FixedCategories,
		},
	}
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"`
}
