package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/payrec/backend/internal/application/billing"
	"github.com/payrec/backend/internal/interfaces/http/dto"
)

// PaymentHandler handles payment-related API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *billing.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billing.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// RegisterRoutes registers payment routes on the given group
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.GET("/", h.List)
		payments.POST("/", h.Create)
		payments.GET("/:id", h.GetByID)
		payments.PUT("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary      List payments
// @Description  List payments filtered by payee name, paginated
// @Tags         payments
// @Produce      json
// @Param        search query string false "Substring match on payee first or last name"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object} billing.PaymentListResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/ [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var filter billing.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// GetByID godoc
// @Summary      Get payment by ID
// @Description  Retrieve a single payment record
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.DataResponse{data=billing.PaymentResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	response, err := h.paymentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.DataResponse{Data: response})
}

// Create godoc
// @Summary      Create a payment
// @Description  Create a new payment record in pending status
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body billing.PaymentRequest true "Payment creation request"
// @Success      200 {object} dto.IDResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/ [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req billing.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := h.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.IDResponse{ID: id})
}

// Update godoc
// @Summary      Update a payment
// @Description  Fully replace a payment record
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Param        request body billing.PaymentRequest true "Payment update request"
// @Success      200 {object} dto.StatusResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	var req billing.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.paymentService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.StatusResponse{Status: "success"})
}

// Delete godoc
// @Summary      Delete a payment
// @Description  Delete a payment record and its linked evidence file
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.StatusResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.paymentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.StatusResponse{Status: "success"})
}
