package v1

import (
	"encoding/json"
	"net/http"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for the export.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ExportResponse struct {
	// Data maps resource names to their full, unfiltered contents.
	Data  map[string]json.RawMessage `json:"data"`
	Error *string                    `json:"error"` // The error, if any occurred
}

// @Summary		Export all data
// @Description	Returns all stored transactions and person mappings, e.g. for migrating to another instance
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	transactions, err := models.Transaction{}.Export()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExportResponse{Error: &s})
		return
	}

	mappings, err := models.PersonMapping{}.Export()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Data: map[string]json.RawMessage{
			"transactions":   transactions,
			"personMappings": mappings,
		},
	})
}
