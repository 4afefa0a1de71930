package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"confportal/internal/domain"
	"confportal/internal/pkg/razorpay"
	"confportal/internal/repository"
)

// Only captured payments are accepted for marking a registration paid.
// "authorized" means the money is blocked but not yet collected, so it is
// rejected together with "failed"/"pending"; the client retries after capture.
const acceptedGatewayStatus = "captured"

const defaultGatewayTimeout = 15 * time.Second

type Service struct {
	registrations registrationReader
	payments      paymentStore
	gateway       gatewayClient
	keyID         string
	currency      string
	timeout       time.Duration
	loggerf       func(format string, args ...interface{})
}

func NewService(
	registrations registrationReader,
	payments paymentStore,
	gateway gatewayClient,
	keyID string,
	currency string,
	timeout time.Duration,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	if currency == "" {
		currency = "INR"
	}
	return &Service{
		registrations: registrations,
		payments:      payments,
		gateway:       gateway,
		keyID:         keyID,
		currency:      currency,
		timeout:       timeout,
		loggerf:       loggerf,
	}
}

// CreateOrder asks the gateway for a fresh checkout order for a registration.
// Nothing is persisted here; the order id only matters again at Verify time.
func (s *Service) CreateOrder(ctx context.Context, userID, registrationID int64) (*CreateOrderResponse, error) {
	reg, err := s.ownedRegistration(ctx, userID, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.IsPaid {
		return nil, ErrAlreadyPaid
	}

	amountMinor := toMinorUnits(reg.RegistrationAmount)
	receipt := "receipt_" + strconv.FormatInt(reg.ID, 10)

	gctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	order, err := s.gateway.CreateOrder(gctx, razorpay.CreateOrderRequest{
		Amount:   amountMinor,
		Currency: s.currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, s.mapGatewayErr("create order", registrationID, err)
	}

	s.loggerf("level=info msg=gateway order created registration_id=%d order_id=%s amount=%d", reg.ID, order.ID, order.Amount)
	return &CreateOrderResponse{
		Order: OrderView{
			ID:       order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Receipt:  order.Receipt,
		},
		KeyID: s.keyID,
	}, nil
}

// Verify re-queries the gateway for the claimed payment id and, only when the
// gateway confirms a captured payment for the claimed order, records the
// payment and marks the registration paid. Client input is never trusted for
// any financial field.
func (s *Service) Verify(ctx context.Context, userID int64, req VerifyRequest) (*domain.Payment, error) {
	reg, err := s.ownedRegistration(ctx, userID, req.RegistrationID)
	if err != nil {
		return nil, err
	}

	gctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	gp, err := s.gateway.FetchPayment(gctx, req.RazorpayPaymentID)
	if err != nil {
		return nil, s.mapGatewayErr("fetch payment", req.RegistrationID, err)
	}

	if gp.OrderID != req.RazorpayOrderID {
		s.loggerf("level=warn msg=order id mismatch registration_id=%d claimed=%s actual=%s payment_id=%s",
			reg.ID, req.RazorpayOrderID, gp.OrderID, gp.ID)
		return nil, ErrOrderMismatch
	}
	if gp.Status != acceptedGatewayStatus {
		s.loggerf("level=warn msg=payment not captured registration_id=%d payment_id=%s status=%s", reg.ID, gp.ID, gp.Status)
		return nil, fmt.Errorf("%w: status %q", ErrNotCaptured, gp.Status)
	}

	p := &domain.Payment{
		RegistrationID:    reg.ID,
		UserID:            reg.UserID,
		Amount:            float64(gp.Amount) / 100,
		Currency:          gp.Currency,
		Status:            domain.PaymentStatus(gp.Status),
		Provider:          domain.PaymentProviderRazorpay,
		RazorpayOrderID:   gp.OrderID,
		RazorpayPaymentID: gp.ID,
		RazorpaySignature: req.RazorpaySignature,
		Receipt:           "receipt_" + strconv.FormatInt(reg.ID, 10),
	}

	saved, created, err := s.payments.CreateWithClaim(ctx, p, registrationNumber(reg))
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationAlreadyPaid) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}
	if !created {
		s.loggerf("level=info msg=duplicate verification resolved idempotently payment_id=%s registration_id=%d", gp.ID, reg.ID)
	} else {
		s.loggerf("level=info msg=payment verified registration_id=%d payment_id=%s amount=%.2f", reg.ID, gp.ID, saved.Amount)
	}
	return saved, nil
}

// Detail returns one stored payment, enriched best-effort from the gateway.
func (s *Service) Detail(ctx context.Context, userID, paymentID int64) (*EnrichedPayment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}
	return s.enrich(ctx, p), nil
}

// History returns the caller's payments. A failed gateway lookup for one row
// only drops that row's razorpayDetails, never the whole response.
func (s *Service) History(ctx context.Context, userID int64) ([]EnrichedPayment, error) {
	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedPayment, 0, len(payments))
	for i := range payments {
		out = append(out, *s.enrich(ctx, &payments[i]))
	}
	return out, nil
}

func (s *Service) enrich(ctx context.Context, p *domain.Payment) *EnrichedPayment {
	view := &EnrichedPayment{Payment: *p}

	gctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	details, err := s.gateway.FetchPayment(gctx, p.RazorpayPaymentID)
	if err != nil {
		s.loggerf("level=warn msg=payment enrichment skipped payment_id=%s err=%v", p.RazorpayPaymentID, err)
		return view
	}
	view.RazorpayDetails = details
	return view
}

func (s *Service) ownedRegistration(ctx context.Context, userID, registrationID int64) (*domain.Registration, error) {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	if reg.UserID != userID {
		return nil, ErrNotOwner
	}
	return reg, nil
}

func (s *Service) mapGatewayErr(op string, registrationID int64, err error) error {
	s.loggerf("level=error msg=gateway call failed op=%q registration_id=%d err=%v", op, registrationID, err)
	if errors.Is(err, razorpay.ErrTimeout) {
		return ErrGatewayTimeout
	}
	var apiErr *razorpay.APIError
	if errors.As(err, &apiErr) {
		// gateway message is safe to forward; credentials never appear in it
		return fmt.Errorf("%w: %s", ErrGatewayUnavailable, apiErr.Error())
	}
	return ErrGatewayUnavailable
}

func toMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

func registrationNumber(reg *domain.Registration) string {
	return fmt.Sprintf("REG-%d-%06d", reg.EventID, reg.ID)
}
