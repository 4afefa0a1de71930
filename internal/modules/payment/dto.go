package payment

import (
	"confportal/internal/domain"
	"confportal/internal/pkg/razorpay"
)

type CreateOrderRequest struct {
	RegistrationID int64 `json:"registrationId" binding:"required" example:"1"`
}

type OrderView struct {
	ID       string `json:"id" example:"order_NXhJ2oPmiBhHsw"`
	Amount   int64  `json:"amount" example:"500000"`
	Currency string `json:"currency" example:"INR"`
	Receipt  string `json:"receipt" example:"receipt_1"`
}

// CreateOrderResponse carries everything the hosted checkout widget needs.
// KeyID is the public half of the gateway credentials; the secret never
// leaves the server.
type CreateOrderResponse struct {
	Order OrderView `json:"order"`
	KeyID string    `json:"keyId" example:"rzp_test_4UweZAvIANsbFn"`
}

type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required" example:"order_NXhJ2oPmiBhHsw"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required" example:"pay_NXhLqG0kkQiA3v"`
	RazorpaySignature string `json:"razorpay_signature,omitempty"`
	RegistrationID    int64  `json:"registrationId" binding:"required" example:"1"`
}

// EnrichedPayment is a stored payment plus a best-effort live gateway lookup.
// RazorpayDetails is omitted when the lookup fails; the stored fields stand.
type EnrichedPayment struct {
	domain.Payment
	RazorpayDetails *razorpay.Payment `json:"razorpayDetails,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request"`
}
