package v1

import (
	"net/http"
	"time"

	"github.com/costtrack/backend/internal/httputil"
	"github.com/costtrack/backend/internal/ledger"
	"github.com/costtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterCostRoutes registers the routes for cost entries with the
// RouterGroup that is passed.
func (co *Controller) RegisterCostRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.CreateCost)
}

// CostCreate represents all user settable parameters of a cost entry.
//
// The amount may be sent as a JSON number or as a numeric string; both
// are parsed into an exact decimal.
type CostCreate struct {
	Description string          `json:"description" example:"lunch"`
	Category    models.Category `json:"category" example:"food" enums:"food,health,housing,sports,education"`
	OwnerID     uint            `json:"ownerId" example:"123"`
	Amount      decimal.Decimal `json:"amount" example:"50" swaggertype:"number"`
	OccurredAt  *time.Time      `json:"occurredAt" example:"2024-01-12T12:30:00Z"`
}

// @Summary		Add cost entry
// @Description	Validates and appends a new entry to the cost ledger. Entries must not be dated before the request.
// @Tags			Costs
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.CostEntry
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			cost	body		CostCreate	true	"Cost entry"
// @Router			/v1/costs [post]
func (co *Controller) CreateCost(c *gin.Context) {
	var create CostCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	entry, err := co.keeper.Admit(ledger.Admission{
		Description: create.Description,
		Category:    create.Category,
		OwnerID:     create.OwnerID,
		Amount:      create.Amount,
		OccurredAt:  create.OccurredAt,
	})
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusCreated, entry)
}
