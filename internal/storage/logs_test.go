package storage_test

import (
	"time"

	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/internal/storage"
)

func (suite *TestSuiteStandard) TestLogsListOrderedByTime() {
	logs := storage.NewLogs(models.DB)

	suite.Require().Nil(logs.Append(&models.LogEvent{
		Time:    time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC),
		Origin:  "backend",
		Message: "later",
	}))
	suite.Require().Nil(logs.Append(&models.LogEvent{
		Time:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		Origin:  "backend",
		Message: "earlier",
	}))

	events, err := logs.List("")
	suite.Require().Nil(err)
	suite.Require().Len(events, 2)
	suite.Assert().Equal("earlier", events[0].Message)
	suite.Assert().Equal("later", events[1].Message)
}

func (suite *TestSuiteStandard) TestLogsListMatch() {
	logs := storage.NewLogs(models.DB)

	suite.Require().Nil(logs.Append(&models.LogEvent{Origin: "frontend", Message: "render failed"}))
	suite.Require().Nil(logs.Append(&models.LogEvent{Origin: "backend", Message: "request served"}))
	suite.Require().Nil(logs.Append(&models.LogEvent{Origin: "worker", Message: "frontend asset build"}))

	// Patterns match either the origin or the message
	events, err := logs.List("frontend*")
	suite.Require().Nil(err)
	suite.Require().Len(events, 2)

	events, err = logs.List("*failed")
	suite.Require().Nil(err)
	suite.Require().Len(events, 1)
	suite.Assert().Equal("render failed", events[0].Message)

	events, err = logs.List("no-such-*")
	suite.Require().Nil(err)
	suite.Assert().Len(events, 0)
}
