package payment

import (
	"context"

	"confportal/internal/domain"
	"confportal/internal/pkg/razorpay"
)

type registrationReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Registration, error)
}

type paymentStore interface {
	CreateWithClaim(ctx context.Context, p *domain.Payment, registrationNo string) (*domain.Payment, bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
}

type gatewayClient interface {
	CreateOrder(ctx context.Context, req razorpay.CreateOrderRequest) (*razorpay.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
}
