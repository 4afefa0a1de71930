package payment

import "errors"

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrNotOwner             = errors.New("registration does not belong to user")
	ErrAlreadyPaid          = errors.New("registration is already paid")
	ErrOrderMismatch        = errors.New("gateway order id does not match the supplied order id")
	ErrNotCaptured          = errors.New("gateway payment is not captured")
	ErrGatewayTimeout       = errors.New("payment gateway timed out")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
)
