package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	v1 "github.com/costtrack/backend/internal/controllers/v1"
	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/internal/report"
	"github.com/costtrack/backend/internal/types"
	"github.com/costtrack/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsReports() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reports", "")

	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetReportAfterCreate() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/costs", v1.CostCreate{
		Description: "lunch",
		Category:    models.CategoryFood,
		OwnerID:     user.ID,
		Amount:      decimal.NewFromFloat(50),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	now := time.Now().UTC()
	recorder = test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/reports?ownerId=%d&year=%d&month=%d", user.ID, now.Year(), now.Month()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result report.Report
	test.DecodeResponse(suite.T(), &recorder, &result)

	suite.Assert().Equal(user.ID, result.OwnerID)

	food := result.CategorizedEntries[models.CategoryFood]
	suite.Require().Len(food, 1)
	suite.Assert().Equal("lunch", food[0].Description)
	suite.Assert().Equal(float64(50), food[0].Amount)
	suite.Assert().Equal(now.Day(), food[0].DayOfMonth)

	// The current month is still open, so nothing is cached
	var count int64
	suite.Require().Nil(models.DB.Model(&models.MonthlyReport{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGetReportWireFormat() {
	user := suite.createTestUser(models.User{})
	now := time.Now().UTC()

	recorder := test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/reports?ownerId=%d&year=%d&month=%d", user.ID, now.Year(), now.Month()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The categorized entries are a fixed-length list of single-key
	// objects, one per category, in a fixed order
	var response struct {
		CategorizedEntries []map[string][]models.ReportItem `json:"categorizedEntries"`
	}
	suite.Require().Nil(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Require().Len(response.CategorizedEntries, 5)

	for i, category := range models.Categories {
		items, ok := response.CategorizedEntries[i][string(category)]
		suite.Require().True(ok, "expected %s at position %d", category, i)
		suite.Assert().NotNil(items)
	}
}

func (suite *TestSuiteStandard) TestGetReportClosedMonthCached() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/reports?ownerId=%d&year=2019&month=3", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var cached models.MonthlyReport
	err := models.DB.First(&cached, "owner_id = ? AND month = ?", user.ID, types.NewMonth(2019, 3)).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestGetReportYearOutOfRange() {
	for _, year := range []int{1969, 3001} {
		recorder := test.Request(suite.T(), http.MethodGet,
			fmt.Sprintf("http://example.com/v1/reports?ownerId=1&year=%d&month=6", year), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response struct {
			Message string `json:"message"`
		}
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal("the year must be between 1970 and 3000", response.Message)
	}
}

func (suite *TestSuiteStandard) TestGetReportMonthOutOfRange() {
	for _, month := range []int{0, 13} {
		recorder := test.Request(suite.T(), http.MethodGet,
			fmt.Sprintf("http://example.com/v1/reports?ownerId=1&year=2023&month=%d", month), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetReportInvalidQuery() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports?ownerId=one&year=2023&month=6", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetReportDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports?ownerId=1&year=2019&month=3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
