// Package v1 implements the v1 API of the backend.
package v1

import (
	"net/http"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 routes with the RouterGroup passed.
func RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", Get)
	group.OPTIONS("", Options)

	RegisterTransactionRoutes(group.Group("/transactions"))
	RegisterImportRoutes(group.Group("/import"))
	RegisterProjectionRoutes(group.Group("/projections"))
	RegisterPersonMappingRoutes(group.Group("/person-mappings"))
	RegisterContributionRoutes(group.Group("/contributions"))
	RegisterStatisticsRoutes(group.Group("/statistics"))
	RegisterCategoryRoutes(group.Group("/categories"))
	RegisterSourceRoutes(group.Group("/sources"))
	RegisterExportRoutes(group.Group("/export"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Import         string `json:"import" example:"https://example.com/api/v1/import"`
	Projections    string `json:"projections" example:"https://example.com/api/v1/projections"`
	PersonMappings string `json:"personMappings" example:"https://example.com/api/v1/person-mappings"`
	Contributions  string `json:"contributions" example:"https://example.com/api/v1/contributions"`
	Statistics     string `json:"statistics" example:"https://example.com/api/v1/statistics"`
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`
	Sources        string `json:"sources" example:"https://example.com/api/v1/sources"`
	Export         string `json:"export" example:"https://example.com/api/v1/export"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions:   url + "/transactions",
			Import:         url + "/import",
			Projections:    url + "/projections",
			PersonMappings: url + "/person-mappings",
			Contributions:  url + "/contributions",
			Statistics:     url + "/statistics",
			Categories:     url + "/categories",
			Sources:        url + "/sources",
			Export:         url + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
