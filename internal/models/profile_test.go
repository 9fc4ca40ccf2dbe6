package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProfileCurrencyDefaults() {
	profile := models.Profile{UserID: uuid.New()}

	suite.Require().NoError(models.DB.Create(&profile).Error)
	assert.Equal(suite.T(), "USD", profile.Currency, "currency must default to USD")
}

func (suite *TestSuiteStandard) TestProfileCurrencyUppercased() {
	profile := models.Profile{UserID: uuid.New(), Currency: " eur "}

	suite.Require().NoError(models.DB.Create(&profile).Error)
	assert.Equal(suite.T(), "EUR", profile.Currency)
}

func (suite *TestSuiteStandard) TestProfilePaydayInvalid() {
	tests := []int{-1, 32}

	for _, payday := range tests {
		profile := models.Profile{UserID: uuid.New(), Payday: payday}

		err := models.DB.Create(&profile).Error
		assert.ErrorIs(suite.T(), err, models.ErrProfilePaydayInvalid, "payday %d must be rejected", payday)
	}
}

func (suite *TestSuiteStandard) TestProfileUserUnique() {
	userID := uuid.New()

	suite.Require().NoError(models.DB.Create(&models.Profile{UserID: userID}).Error)

	err := models.DB.Create(&models.Profile{UserID: userID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProfileUserNotUnique)
}

func (suite *TestSuiteStandard) TestProfileFixedCategoryPatterns() {
	tests := []struct {
		name     string
		declared string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "rent*", []string{"rent*"}},
		{"multiple with spaces", "rent*, utilit* ,insurance", []string{"rent*", "utilit*", "insurance"}},
		{"trailing comma", "rent*,", []string{"rent*"}},
	}

	for _, tt := range tests {
		profile := models.Profile{FixedCategories: tt.declared}
		assert.Equal(suite.T(), tt.expected, profile.FixedCategoryPatterns(), tt.name)
	}
}
