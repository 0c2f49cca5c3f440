package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payrec/backend/internal/application/billing"
	"github.com/payrec/backend/internal/interfaces/http/dto"
)

// EvidenceHandler handles evidence document API endpoints
type EvidenceHandler struct {
	BaseHandler
	evidenceService *billing.EvidenceService
}

// NewEvidenceHandler creates a new EvidenceHandler
func NewEvidenceHandler(evidenceService *billing.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{
		evidenceService: evidenceService,
	}
}

// RegisterRoutes registers evidence routes on the given group
func (h *EvidenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("/:id/upload_evidence/", h.Upload)
		payments.GET("/:id/download_evidence/", h.Download)
	}
	rg.GET("/files/:id", h.GetMetadata)
}

// Upload godoc
// @Summary      Upload evidence
// @Description  Store an evidence document and link it to the payment
// @Tags         evidence
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Param        file formData file true "Evidence file (pdf, png or jpeg)"
// @Success      200 {object} dto.UploadEvidenceResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/{id}/upload_evidence/ [post]
func (h *EvidenceHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "unable to read uploaded file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "unable to read uploaded file")
		return
	}

	evidenceID, err := h.evidenceService.Upload(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		content,
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.UploadEvidenceResponse{
		Status:     "file uploaded",
		EvidenceID: evidenceID,
	})
}

// Download godoc
// @Summary      Download evidence
// @Description  Stream the evidence document linked to the payment
// @Tags         evidence
// @Produce      octet-stream
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/{id}/download_evidence/ [get]
func (h *EvidenceHandler) Download(c *gin.Context) {
	download, err := h.evidenceService.DownloadByPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", download.FileName))
	c.Data(http.StatusOK, "application/octet-stream", download.Content)
}

// GetMetadata godoc
// @Summary      Get evidence metadata
// @Description  Retrieve evidence file metadata by file ID
// @Tags         evidence
// @Produce      json
// @Param        id path string true "File ID" format(uuid)
// @Success      200 {object} dto.FileDataResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /files/{id} [get]
func (h *EvidenceHandler) GetMetadata(c *gin.Context) {
	fileData, err := h.evidenceService.GetMetadataByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.FileDataResponse{
		Status:   "success",
		FileData: fileData,
	})
}
