package storage_test

import (
	"errors"

	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/internal/storage"
)

func (suite *TestSuiteStandard) TestUsersCRUD() {
	users := storage.NewUsers(models.DB)

	user := models.User{Name: "Marta", Email: "marta@example.com"}
	suite.Require().Nil(users.Create(&user))
	suite.Require().NotZero(user.ID)

	loaded, err := users.Get(user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Marta", loaded.Name)

	suite.Require().Nil(users.Update(&loaded, models.User{Email: "m@example.com"}))

	loaded, err = users.Get(user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("m@example.com", loaded.Email)

	suite.Require().Nil(users.Delete(&loaded))

	_, err = users.Get(user.ID)
	suite.Assert().True(errors.Is(err, models.ErrNotFound), "Wrong error: %v", err)
}

func (suite *TestSuiteStandard) TestUsersListOrdered() {
	users := storage.NewUsers(models.DB)

	suite.Require().Nil(users.Create(&models.User{Name: "First"}))
	suite.Require().Nil(users.Create(&models.User{Name: "Second"}))

	list, err := users.List()
	suite.Require().Nil(err)
	suite.Require().Len(list, 2)
	suite.Assert().Equal("First", list[0].Name)
	suite.Assert().Equal("Second", list[1].Name)
}

func (suite *TestSuiteStandard) TestUsersExists() {
	users := storage.NewUsers(models.DB)

	user := models.User{Name: "Marta"}
	suite.Require().Nil(users.Create(&user))

	exists, err := users.Exists(user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(exists)

	exists, err = users.Exists(user.ID + 1)
	suite.Require().Nil(err)
	suite.Assert().False(exists)

	// Deleted users no longer exist
	suite.Require().Nil(users.Delete(&user))

	exists, err = users.Exists(user.ID)
	suite.Require().Nil(err)
	suite.Assert().False(exists)
}
