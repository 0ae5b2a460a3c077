package models_test

import (
	"time"

	"github.com/costtrack/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestLogEventDefaults() {
	event := models.LogEvent{Message: "  worker started  "}
	suite.Require().Nil(models.DB.Create(&event).Error)

	suite.Assert().NotEqual(uuid.Nil, event.ID)
	suite.Assert().Equal("info", event.Level)
	suite.Assert().Equal("worker started", event.Message)
	suite.Assert().False(event.Time.IsZero())
}

func (suite *TestSuiteStandard) TestLogEventKeepsValues() {
	timestamp := time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC)

	event := models.LogEvent{
		Time:    timestamp,
		Level:   "error",
		Origin:  "frontend",
		Message: "render failed",
	}
	suite.Require().Nil(models.DB.Create(&event).Error)

	var loaded models.LogEvent
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", event.ID).Error)

	suite.Assert().True(loaded.Time.Equal(timestamp))
	suite.Assert().Equal("error", loaded.Level)
	suite.Assert().Equal("frontend", loaded.Origin)
}
