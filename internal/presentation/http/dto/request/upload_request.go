package request

import "github.com/Hardik699/hanuram-sale-new/internal/domain/entity"

// CreateRowBatchRequest is the payload for uploading one sales table.
// Data[0] is the header row; cells may arrive as JSON strings or numbers
// and are preserved as-is.
type CreateRowBatchRequest struct {
	SourceType string          `json:"source_type" binding:"required"`
	Year       int             `json:"year" binding:"required"`
	Month      int             `json:"month" binding:"required"`
	Data       [][]entity.Cell `json:"data" binding:"required"`
}

// SalesQueryRequest carries the optional filters of the item sales query.
// Dates are inclusive "2006-01-02" bounds; both must be present and valid
// for the window to take effect.
type SalesQueryRequest struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Restaurant string `form:"restaurant"`
}

// ListBatchesRequest pages through stored batch metadata.
type ListBatchesRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}
