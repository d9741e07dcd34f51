package handler

import (
	"github.com/Hardik699/hanuram-sale-new/internal/application/service"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SAPHandler handles SAP code reconciliation HTTP requests
type SAPHandler struct {
	sapService *service.SAPService
}

// NewSAPHandler creates a new SAP handler
func NewSAPHandler(sapService *service.SAPService) *SAPHandler {
	return &SAPHandler{sapService: sapService}
}

// ListCodes handles listing SAP codes present in uploaded data
func (h *SAPHandler) ListCodes(c *gin.Context) {
	codes, err := h.sapService.ListCodes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "SAP codes retrieved successfully", codes)
}

// MatchItems handles the catalog-to-upload reconciliation report
func (h *SAPHandler) MatchItems(c *gin.Context) {
	matches, err := h.sapService.MatchItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item match report retrieved successfully", matches)
}
