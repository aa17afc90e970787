package v1

import (
	"net/http"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/projection"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterProjectionRoutes registers the routes for projections.
func RegisterProjectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProjections)
	r.POST("", CreateProjection)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projections
// @Success		204
// @Router			/v1/projections [options]
func OptionsProjections(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ProjectionCreate is the request body for a projection.
type ProjectionCreate struct {
	// CurrentBalance is the starting balance. When omitted, the balance of
	// the most recent stored transaction that reports one is used.
	CurrentBalance *decimal.Decimal `json:"currentBalance" example:"1000.00"`

	// Months is the projection horizon. Defaults to 12 when omitted.
	Months int `json:"months" example:"12" default:"12"`

	RecurringDeposits    []projection.RecurringCashFlow `json:"recurringDeposits"`
	RecurringWithdrawals []projection.RecurringCashFlow `json:"recurringWithdrawals"`
}

type ProjectionResponse struct {
	Data  *projection.Result `json:"data"`  // The projection
	Error *string            `json:"error"` // The error, if any occurred
}

// @Summary		Project balances
// @Description	Simulates the account balance month by month under the given recurring cash flows. Either the whole projection succeeds or an error is returned, never a partial result.
// @Tags			Projections
// @Accept			json
// @Produce		json
// @Success		200			{object}	ProjectionResponse
// @Failure		400			{object}	ProjectionResponse
// @Failure		500			{object}	ProjectionResponse
// @Param			projection	body		ProjectionCreate	true	"Projection parameters"
// @Router			/v1/projections [post]
func CreateProjection(c *gin.Context) {
	var create ProjectionCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProjectionResponse{Error: &s})
		return
	}

	// Defaulting the horizon is this boundary's job, the engine itself
	// rejects a non-positive number of months.
	if create.Months == 0 {
		create.Months = 12
	}

	currentBalance := create.CurrentBalance
	if currentBalance == nil {
		latest, err := store().LatestBalance()
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusInternalServerError, ProjectionResponse{Error: &s})
			return
		}
		if latest == nil {
			s := errNoCurrentBalance.Error()
			c.JSON(http.StatusBadRequest, ProjectionResponse{Error: &s})
			return
		}
		currentBalance = latest
	}

	result, err := projection.Project(*currentBalance, create.Months, create.RecurringDeposits, create.RecurringWithdrawals)
	if err != nil {
		s := err.Error()
		c.JSON(projectionStatus(err), ProjectionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProjectionResponse{Data: &result})
}
