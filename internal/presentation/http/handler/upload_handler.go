package handler

import (
	"github.com/Hardik699/hanuram-sale-new/internal/application/service"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/dto/request"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/dto/response"
	"github.com/Hardik699/hanuram-sale-new/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler handles row batch upload HTTP requests
type UploadHandler struct {
	batchService *service.RowBatchService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(batchService *service.RowBatchService) *UploadHandler {
	return &UploadHandler{batchService: batchService}
}

// Create handles storing one uploaded sales table
func (h *UploadHandler) Create(c *gin.Context) {
	var req request.CreateRowBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	batch, err := h.batchService.CreateRowBatch(c.Request.Context(), req.SourceType, req.Year, req.Month, req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Row batch stored successfully", batch)
}

// List handles listing batch metadata
func (h *UploadHandler) List(c *gin.Context) {
	var req request.ListBatchesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.batchService.ListBatches(c.Request.Context(), &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Row batches retrieved successfully", result)
}

// Delete handles removing one batch
func (h *UploadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid batch ID")
		return
	}

	if err := h.batchService.DeleteBatch(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
