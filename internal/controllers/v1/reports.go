package v1

import (
	"net/http"

	"github.com/costtrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for monthly reports with
// the RouterGroup that is passed.
func (co *Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetReport)
}

// ReportQuery are the parameters identifying one monthly report.
type ReportQuery struct {
	OwnerID uint `form:"ownerId" example:"123"`
	Year    int  `form:"year" example:"2024"`
	Month   int  `form:"month" example:"7"`
}

// @Summary		Monthly report
// @Description	Returns the owner's cost entries for one calendar month, grouped by category. Reports for months that have fully elapsed are computed once and cached.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	report.Report
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			ownerId	query		uint	true	"ID of the owner"
// @Param			year	query		int		true	"Year, between 1970 and 3000"
// @Param			month	query		int		true	"Month, between 1 and 12"
// @Router			/v1/reports [get]
func (co *Controller) GetReport(c *gin.Context) {
	var query ReportQuery

	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(httputil.ErrRequestBodyInvalid))
		return
	}

	monthly, err := co.engine.MonthlyReport(query.OwnerID, query.Year, query.Month)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, monthly)
}
