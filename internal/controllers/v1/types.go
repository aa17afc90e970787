package v1

import (
	"github.com/balance-pilot/backend/internal/models"
	"github.com/balance-pilot/backend/internal/storage"
	bp_uuid "github.com/balance-pilot/backend/internal/uuid"
)

type URIID struct {
	ID bp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination of list endpoints.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// store returns the storage backend for the global database connection.
func store() *storage.GormStore {
	return storage.NewGormStore(models.DB)
}
