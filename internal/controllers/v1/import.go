package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/importer"
	"github.com/balance-pilot/backend/internal/importer/parser/csvfile"
	"github.com/gin-gonic/gin"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

type ImportResponse struct {
	Data  *importer.Result `json:"data"`  // The outcome summary of the batch
	Error *string          `json:"error"` // The error, if any occurred
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Import transactions
// @Description	Imports a CSV transaction export. Returns a per-batch outcome summary; a bad row rejects only that row, duplicates are skipped, everything else is inserted.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"The CSV file to import"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}
	defer f.Close()

	rows, err := csvfile.Parse(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	result, err := importer.New(store()).Run(rows)
	if err != nil {
		// Store errors are retryable: the insert is idempotent per
		// fingerprint, so the client can send the same file again.
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ImportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Data: &result})
}
