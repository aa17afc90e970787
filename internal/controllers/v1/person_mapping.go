package v1

import (
	"net/http"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPersonMappingRoutes registers the routes for person mappings.
func RegisterPersonMappingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPersonMappings)
		r.GET("", GetPersonMappings)
		r.POST("", CreatePersonMapping)
	}

	// Mapping with ID
	{
		r.OPTIONS("/:id", OptionsPersonMappingDetail)
		r.DELETE("/:id", DeletePersonMapping)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PersonMappings
// @Success		204
// @Router			/v1/person-mappings [options]
func OptionsPersonMappings(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PersonMappings
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/person-mappings/{id} [options]
func OptionsPersonMappingDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

type PersonMappingResponse struct {
	Data  *models.PersonMapping `json:"data"`  // The person mapping
	Error *string               `json:"error"` // The error, if any occurred
}

type PersonMappingListResponse struct {
	Data  []models.PersonMapping `json:"data"`  // List of person mappings
	Error *string                `json:"error"` // The error, if any occurred
}

// PersonMappingEditable are the fields settable on creation.
type PersonMappingEditable struct {
	PersonName string `json:"personName" binding:"required" example:"Alice"` // Name of the contributor
	Keyword    string `json:"keyword" binding:"required" example:"rent"`     // Substring to look for in transaction descriptions
}

// @Summary		Get person mappings
// @Description	Returns all person mappings, ordered by person name and keyword
// @Tags			PersonMappings
// @Produce		json
// @Success		200	{object}	PersonMappingListResponse
// @Failure		500	{object}	PersonMappingListResponse
// @Router			/v1/person-mappings [get]
func GetPersonMappings(c *gin.Context) {
	mappings := make([]models.PersonMapping, 0)
	err := models.DB.Order("person_name ASC, keyword ASC").Find(&mappings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonMappingListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PersonMappingListResponse{Data: mappings})
}

// @Summary		Create person mapping
// @Description	Creates a new person mapping. The combination of person name and keyword is unique, case-insensitively.
// @Tags			PersonMappings
// @Accept			json
// @Produce		json
// @Success		201		{object}	PersonMappingResponse
// @Failure		400		{object}	PersonMappingResponse
// @Failure		500		{object}	PersonMappingResponse
// @Param			mapping	body		PersonMappingEditable	true	"Person mapping"
// @Router			/v1/person-mappings [post]
func CreatePersonMapping(c *gin.Context) {
	var editable PersonMappingEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PersonMappingResponse{Error: &s})
		return
	}

	mapping := models.PersonMapping{
		PersonName: editable.PersonName,
		Keyword:    editable.Keyword,
	}

	err := models.DB.Create(&mapping).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonMappingResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, PersonMappingResponse{Data: &mapping})
}

// @Summary		Delete person mapping
// @Description	Deletes a person mapping. Contributor attribution is computed at read time, so the deletion takes effect immediately.
// @Tags			PersonMappings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/person-mappings/{id} [delete]
func DeletePersonMapping(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var mapping models.PersonMapping
	err := models.DB.First(&mapping, "id = ?", uri.ID.String()).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&mapping).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
