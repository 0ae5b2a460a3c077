package v1_test

import (
	"net/http"

	v1 "github.com/costtrack/backend/internal/controllers/v1"
	"github.com/costtrack/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsTeam() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/team", "")

	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetTeam() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/team", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var members []v1.TeamMember
	test.DecodeResponse(suite.T(), &recorder, &members)

	suite.Require().NotEmpty(members)
	for _, member := range members {
		suite.Assert().NotEmpty(member.Name)
		suite.Assert().NotEmpty(member.Role)
		suite.Assert().NotEmpty(member.GitHub)
	}
}
