package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/costtrack/backend/internal/controllers/v1"
	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsCosts() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/costs", "")

	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateCost() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", v1.CostCreate{
		Description: "lunch",
		Category:    models.CategoryFood,
		OwnerID:     user.ID,
		Amount:      decimal.NewFromFloat(50),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var entry models.CostEntry
	test.DecodeResponse(suite.T(), &recorder, &entry)

	suite.Assert().Equal("lunch", entry.Description)
	suite.Assert().Equal(models.CategoryFood, entry.Category)
	suite.Assert().Equal(user.ID, entry.OwnerID)
	suite.Assert().True(entry.Amount.Equal(decimal.NewFromFloat(50)), "Amount is %s", entry.Amount)
}

func (suite *TestSuiteStandard) TestCreateCostAmountAsString() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs",
		fmt.Sprintf(`{ "description": "coffee", "category": "food", "ownerId": %d, "amount": "3.50" }`, user.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var entry models.CostEntry
	test.DecodeResponse(suite.T(), &recorder, &entry)
	suite.Assert().True(entry.Amount.Equal(decimal.NewFromFloat(3.5)), "Amount is %s", entry.Amount)
}

func (suite *TestSuiteStandard) TestCreateCostBackdated() {
	user := suite.createTestUser(models.User{})
	past := time.Now().UTC().Add(-time.Hour)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", v1.CostCreate{
		Description: "yesterday's lunch",
		Category:    models.CategoryFood,
		OwnerID:     user.ID,
		Amount:      decimal.NewFromFloat(12),
		OccurredAt:  &past,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(-1, response.Code)
	suite.Assert().Equal("the cost must not be dated before the time of the request", response.Message)
}

func (suite *TestSuiteStandard) TestCreateCostInvalidCategory() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", v1.CostCreate{
		Description: "movie night",
		Category:    "entertainment",
		OwnerID:     user.ID,
		Amount:      decimal.NewFromFloat(15),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCostUnknownOwner() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", v1.CostCreate{
		Description: "lunch",
		Category:    models.CategoryFood,
		OwnerID:     4096,
		Amount:      decimal.NewFromFloat(50),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateCostInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", `{ "description": }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCostEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Message string `json:"message"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the request body must not be empty", response.Message)
}

func (suite *TestSuiteStandard) TestCreateCostDBClosed() {
	user := suite.createTestUser(models.User{})
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", v1.CostCreate{
		Description: "lunch",
		Category:    models.CategoryFood,
		OwnerID:     user.ID,
		Amount:      decimal.NewFromFloat(50),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
