package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"confportal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the payment endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payment/order", h.CreateOrder)
	rg.POST("/payment/verify", h.Verify)
	rg.GET("/payment/history", h.History)
	rg.GET("/payment/:paymentId", h.Detail)
}

// CreateOrder godoc
// @Summary      Create a gateway checkout order for a registration
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateOrderRequest true "Order payload"
// @Success      200 {object} CreateOrderResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /payment/order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), c.GetInt64("user_id"), req.RegistrationID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Verify godoc
// @Summary      Verify a completed checkout against the gateway
// @Description  Fetches the payment server-to-server, cross-checks the order id
// @Description  and records the payment; duplicate calls are idempotent.
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body VerifyRequest true "Identifiers returned by the checkout widget"
// @Success      200 {object} domain.Payment
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /payment/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Verify(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

// History godoc
// @Summary      List the caller's payments with live gateway enrichment
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} EnrichedPayment
// @Router       /payment/history [get]
func (h *Handler) History(c *gin.Context) {
	payments, err := h.service.History(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

// Detail godoc
// @Summary      Fetch one payment with live gateway enrichment
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Param        paymentId path int true "Payment ID"
// @Success      200 {object} EnrichedPayment
// @Failure      404 {object} ErrorResponse
// @Router       /payment/{paymentId} [get]
func (h *Handler) Detail(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("paymentId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment ID")
		return
	}

	p, err := h.service.Detail(c.Request.Context(), c.GetInt64("user_id"), paymentID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRegistrationNotFound), errors.Is(err, ErrPaymentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrAlreadyPaid):
		response.Error(c, http.StatusBadRequest, "ALREADY_PAID", err.Error())
	case errors.Is(err, ErrOrderMismatch):
		response.Error(c, http.StatusBadRequest, "ORDER_MISMATCH", err.Error())
	case errors.Is(err, ErrNotCaptured):
		response.Error(c, http.StatusBadRequest, "PAYMENT_NOT_CAPTURED", err.Error())
	case errors.Is(err, ErrGatewayTimeout):
		response.Error(c, http.StatusGatewayTimeout, "GATEWAY_TIMEOUT", err.Error())
	case errors.Is(err, ErrGatewayUnavailable):
		response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
