package v1

import (
	"net/http"
	"time"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// RegisterStatisticsRoutes registers the routes for statistics.
func RegisterStatisticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStatistics)
	r.GET("", GetStatistics)
}

// RegisterCategoryRoutes registers the route listing known categories.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// RegisterSourceRoutes registers the route listing known sources.
func RegisterSourceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSources)
	r.GET("", GetSources)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/statistics [options]
func OptionsStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/sources [options]
func OptionsSources(c *gin.Context) {
	httputil.OptionsGet(c)
}

type StatisticsQueryFilter struct {
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02"`  // Transactions at and after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02"` // Transactions before and at this date
}

type StatisticsResponse struct {
	Data  *storage.Statistics `json:"data"`  // The statistics
	Error *string             `json:"error"` // The error, if any occurred
}

type StringListResponse struct {
	Data  []string `json:"data"`  // List of values
	Error *string  `json:"error"` // The error, if any occurred
}

// @Summary		Get statistics
// @Description	Returns summary statistics over the stored transactions
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	StatisticsResponse
// @Failure		400	{object}	StatisticsResponse
// @Failure		500	{object}	StatisticsResponse
// @Router			/v1/statistics [get]
// @Param			fromDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func GetStatistics(c *gin.Context) {
	var filter StatisticsQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, StatisticsResponse{Error: &s})
		return
	}

	var from, until *time.Time
	if !filter.FromDate.IsZero() {
		from = &filter.FromDate
	}
	if !filter.UntilDate.IsZero() {
		until = &filter.UntilDate
	}

	statistics, err := store().Statistics(from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatisticsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, StatisticsResponse{Data: &statistics})
}

// @Summary		Get categories
// @Description	Returns the distinct categories of the stored transactions
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	StringListResponse
// @Failure		500	{object}	StringListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	distinctValues(c, "category")
}

// @Summary		Get sources
// @Description	Returns the distinct sources of the stored transactions
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	StringListResponse
// @Failure		500	{object}	StringListResponse
// @Router			/v1/sources [get]
func GetSources(c *gin.Context) {
	distinctValues(c, "source")
}

func distinctValues(c *gin.Context, column string) {
	values := make([]string, 0)
	err := models.DB.Model(&models.Transaction{}).
		Distinct(column).
		Where(column+" != ''").
		Order(column+" ASC").
		Pluck(column, &values).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StringListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, StringListResponse{Data: values})
}
