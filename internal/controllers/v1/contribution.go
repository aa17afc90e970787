package v1

import (
	"net/http"
	"time"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// RegisterContributionRoutes registers the routes for contributions.
func RegisterContributionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsContributions)
	r.GET("", GetContributions)

	r.OPTIONS("/statistics", OptionsContributionStatistics)
	r.GET("/statistics", GetContributionStatistics)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contributions
// @Success		204
// @Router			/v1/contributions [options]
func OptionsContributions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contributions
// @Success		204
// @Router			/v1/contributions/statistics [options]
func OptionsContributionStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ContributionQueryFilter struct {
	FromDate   time.Time `form:"fromDate" time_format:"2006-01-02"`  // Contributions at and after this date
	UntilDate  time.Time `form:"untilDate" time_format:"2006-01-02"` // Contributions before and at this date
	PersonName string    `form:"personName"`                         // Filter by contributor
}

func (f ContributionQueryFilter) dates() (from, until *time.Time) {
	if !f.FromDate.IsZero() {
		from = &f.FromDate
	}
	if !f.UntilDate.IsZero() {
		until = &f.UntilDate
	}
	return
}

type ContributionListResponse struct {
	Data  []storage.Contribution `json:"data"`  // List of contributions
	Error *string                `json:"error"` // The error, if any occurred
}

type ContributionStatisticsResponse struct {
	Data  *storage.ContributionStatistics `json:"data"`  // The aggregated statistics
	Error *string                         `json:"error"` // The error, if any occurred
}

// @Summary		Get contributions
// @Description	Returns all deposits attributed to contributors via the person mappings. When several keywords match a description, the longest keyword wins.
// @Tags			Contributions
// @Produce		json
// @Success		200	{object}	ContributionListResponse
// @Failure		400	{object}	ContributionListResponse
// @Failure		500	{object}	ContributionListResponse
// @Router			/v1/contributions [get]
// @Param			fromDate	query	string	false	"Contributions at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Contributions before and at this date (YYYY-MM-DD)"
// @Param			personName	query	string	false	"Filter by contributor"
func GetContributions(c *gin.Context) {
	var filter ContributionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContributionListResponse{Error: &s})
		return
	}

	from, until := filter.dates()
	contributions, err := store().Contributions(from, until, filter.PersonName)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ContributionListResponse{Data: contributions})
}

// @Summary		Get contribution statistics
// @Description	Returns contribution totals per person and per month. The monthly average divides a person's total by the count of distinct months observed across all contributors combined, which skews averages when contributors have different numbers of active months.
// @Tags			Contributions
// @Produce		json
// @Success		200	{object}	ContributionStatisticsResponse
// @Failure		400	{object}	ContributionStatisticsResponse
// @Failure		500	{object}	ContributionStatisticsResponse
// @Router			/v1/contributions/statistics [get]
// @Param			fromDate	query	string	false	"Contributions at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Contributions before and at this date (YYYY-MM-DD)"
func GetContributionStatistics(c *gin.Context) {
	var filter ContributionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContributionStatisticsResponse{Error: &s})
		return
	}

	from, until := filter.dates()
	statistics, err := store().ContributionStatistics(from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionStatisticsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ContributionStatisticsResponse{Data: &statistics})
}
