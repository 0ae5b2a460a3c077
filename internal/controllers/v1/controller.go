// Package v1 implements the v1 API of the cost tracker.
package v1

import (
	"github.com/costtrack/backend/internal/ledger"
	"github.com/costtrack/backend/internal/logsink"
	"github.com/costtrack/backend/internal/report"
	"github.com/costtrack/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the stores and services the handlers work with.
type Controller struct {
	users  *storage.Users
	logs   *storage.Logs
	engine *report.Engine
	keeper *ledger.Gatekeeper
}

// NewController wires the stores, the report engine and the ledger
// gatekeeper on top of the database connection.
func NewController(db *gorm.DB, events *logsink.Sink) *Controller {
	users := storage.NewUsers(db)
	costs := storage.NewLedger(db)
	cache := storage.NewReportCache(db)

	return &Controller{
		users:  users,
		logs:   storage.NewLogs(db),
		engine: report.NewEngine(costs, cache),
		keeper: ledger.NewGatekeeper(users, costs, events),
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co *Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterCostRoutes(r.Group("/costs"))
	co.RegisterReportRoutes(r.Group("/reports"))
	co.RegisterUserRoutes(r.Group("/users"))
	co.RegisterLogRoutes(r.Group("/logs"))
	co.RegisterTeamRoutes(r.Group("/team"))
}
