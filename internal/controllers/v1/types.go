package v1

import (
	"github.com/spendwise-app/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  uint `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}
