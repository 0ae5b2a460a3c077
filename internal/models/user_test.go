package models_test

import (
	"errors"

	"github.com/costtrack/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserTrimmedOnSave() {
	user := models.User{Name: "  Marge  ", Email: " marge@example.com "}
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal("Marge", user.Name)
	suite.Assert().Equal("marge@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserNameRequired() {
	err := models.DB.Create(&models.User{Name: "   "}).Error

	suite.Assert().True(errors.Is(err, models.ErrUserNameMissing), "Wrong error: %v", err)
}

func (suite *TestSuiteStandard) TestUserNotFoundError() {
	err := models.DB.First(&models.User{}, 4096).Error

	suite.Require().NotNil(err)
	suite.Assert().True(errors.Is(err, models.ErrNotFound), "Wrong error: %v", err)
	suite.Assert().Equal("there is no user matching your query", err.Error())
}
