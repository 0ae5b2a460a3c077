package v1

import (
	"net/http"

	"github.com/costtrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterTeamRoutes registers the routes for team information with
// the RouterGroup that is passed.
func (co *Controller) RegisterTeamRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetTeam)
}

// TeamMember describes one member of the development team.
type TeamMember struct {
	Name   string `json:"name" example:"Jane Doe"`
	Role   string `json:"role" example:"Backend"`
	GitHub string `json:"github" example:"janedoe"`
}

// team is the static team roster served by the admin endpoint.
var team = []TeamMember{
	{Name: "Marta Klein", Role: "Backend", GitHub: "martak"},
	{Name: "Jonas Brandt", Role: "Backend", GitHub: "jbrandt"},
	{Name: "Ana Oliveira", Role: "Frontend", GitHub: "anaol"},
	{Name: "Piotr Nowak", Role: "Operations", GitHub: "pnowak"},
}

// @Summary		Team info
// @Description	Returns the static list of team members
// @Tags			Admin
// @Produce		json
// @Success		200	{array}	TeamMember
// @Router			/v1/team [get]
func GetTeam(c *gin.Context) {
	c.JSON(http.StatusOK, team)
}
