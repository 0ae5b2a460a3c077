package v1

import (
	"net/http"

	"github.com/costtrack/backend/internal/httputil"
	"github.com/costtrack/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterLogRoutes registers the routes for log collection with the
// RouterGroup that is passed.
func (co *Controller) RegisterLogRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetLogs)
	r.POST("", co.CreateLog)
}

// LogCreate represents one submitted log event.
type LogCreate struct {
	Level   string `json:"level" example:"warn"`
	Origin  string `json:"origin" example:"cost-service"`
	Message string `json:"message" example:"report cache miss"`
}

// @Summary		Submit log event
// @Description	Collects a log event from one of the services. Submission is fire-and-forget: a failing store never fails the submitter.
// @Tags			Logs
// @Accept			json
// @Produce		json
// @Success		202
// @Failure		400	{object}	httpError
// @Param			event	body	LogCreate	true	"Log event"
// @Router			/v1/logs [post]
func (co *Controller) CreateLog(c *gin.Context) {
	var create LogCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	event := models.LogEvent{
		Level:   create.Level,
		Origin:  create.Origin,
		Message: create.Message,
	}

	// Persistence failures must not propagate to the submitter.
	err = co.logs.Append(&event)
	if err != nil {
		log.Error().Err(err).Str("request-id", requestid.Get(c)).Msg("could not store log event")
	}

	c.Status(http.StatusAccepted)
}

// @Summary		List log events
// @Description	Returns collected log events in the order they occurred
// @Tags			Logs
// @Produce		json
// @Success		200		{array}		models.LogEvent
// @Failure		500		{object}	httpError
// @Param			match	query		string	false	"Glob pattern matched against origin and message"
// @Router			/v1/logs [get]
func (co *Controller) GetLogs(c *gin.Context) {
	events, err := co.logs.List(c.Query("match"))
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, events)
}
