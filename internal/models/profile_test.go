package models_test

import (
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	p := models.Profile{
		UserID:  "user",
		Name:    "  Lakshmi ",
		Village: "\tTenali ",
		Locale:  i18n.Telugu,
	}

	suite.Require().Nil(suite.db.Create(&p).Error)

	var read models.Profile
	suite.Require().Nil(suite.db.First(&read, "user_id = ?", "user").Error)
	suite.Assert().Equal("Lakshmi", read.Name)
	suite.Assert().Equal("Tenali", read.Village)
	suite.Assert().Equal(i18n.Telugu, read.Locale)
	suite.Assert().False(read.MonthlyIncome.Valid)
}
