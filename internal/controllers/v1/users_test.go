package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/costtrack/backend/internal/controllers/v1"
	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsUsers() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users", "")

	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsUserDetail() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/users/%d", user.ID), "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users/4096", "")
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestCreateUser() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Name:  "Marta Klein",
		Email: "marta@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var user models.User
	test.DecodeResponse(suite.T(), &recorder, &user)

	suite.Assert().NotZero(user.ID)
	suite.Assert().Equal("Marta Klein", user.Name)
}

func (suite *TestSuiteStandard) TestCreateUserNoName() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{Name: "   "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Message string `json:"message"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the user name must be set", response.Message)
}

func (suite *TestSuiteStandard) TestGetUsers() {
	suite.createTestUser(models.User{Name: "First"})
	suite.createTestUser(models.User{Name: "Second"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var users []models.User
	test.DecodeResponse(suite.T(), &recorder, &users)

	suite.Require().Len(users, 2)
	suite.Assert().Equal("First", users[0].Name)
	suite.Assert().Equal("Second", users[1].Name)
}

func (suite *TestSuiteStandard) TestGetUser() {
	user := suite.createTestUser(models.User{Name: "Marta"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%d", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var loaded models.User
	test.DecodeResponse(suite.T(), &recorder, &loaded)
	suite.Assert().Equal("Marta", loaded.Name)
}

func (suite *TestSuiteStandard) TestGetUserNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/4096", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetUserInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/one", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateUser() {
	user := suite.createTestUser(models.User{Name: "Marta"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/users/%d", user.ID), map[string]string{
		"email": "marta@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.User
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("marta@example.com", updated.Email)
	suite.Assert().Equal("Marta", updated.Name)
}

func (suite *TestSuiteStandard) TestUpdateUserNotFound() {
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/users/4096", map[string]string{
		"name": "Nobody",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteUser() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/users/%d", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%d", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetUsersDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
