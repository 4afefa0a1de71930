package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"confportal/internal/domain"
	"confportal/internal/pkg/razorpay"
	"confportal/internal/repository"
)

type mockRegistrations struct {
	reg *domain.Registration
}

func (m *mockRegistrations) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	if m.reg == nil || m.reg.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.reg
	return &cp, nil
}

// mockPayments mirrors the claim-then-insert transaction semantics of the real
// repository, including the idempotent duplicate path.
type mockPayments struct {
	mu      sync.Mutex
	stored  map[string]*domain.Payment
	paid    map[int64]bool
	created int
}

func newMockPayments() *mockPayments {
	return &mockPayments{stored: map[string]*domain.Payment{}, paid: map[int64]bool{}}
}

func (m *mockPayments) CreateWithClaim(ctx context.Context, p *domain.Payment, registrationNo string) (*domain.Payment, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.paid[p.RegistrationID] {
		if existing, ok := m.stored[p.RazorpayPaymentID]; ok {
			return existing, false, nil
		}
		return nil, false, repository.ErrRegistrationAlreadyPaid
	}
	m.paid[p.RegistrationID] = true
	m.created++
	p.ID = int64(m.created)
	m.stored[p.RazorpayPaymentID] = p
	return p, true, nil
}

func (m *mockPayments) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.stored {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPayments) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Payment
	for _, p := range m.stored {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type mockGateway struct {
	mu        sync.Mutex
	order     *razorpay.Order
	orderErr  error
	payments  map[string]*razorpay.Payment
	fetchErrs map[string]error
	lastOrder razorpay.CreateOrderRequest
}

func (m *mockGateway) CreateOrder(ctx context.Context, req razorpay.CreateOrderRequest) (*razorpay.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastOrder = req
	if m.orderErr != nil {
		return nil, m.orderErr
	}
	if m.order != nil {
		return m.order, nil
	}
	return &razorpay.Order{ID: "order_generated", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
}

func (m *mockGateway) FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.fetchErrs[paymentID]; ok {
		return nil, err
	}
	if p, ok := m.payments[paymentID]; ok {
		return p, nil
	}
	return nil, &razorpay.APIError{StatusCode: 400}
}

func newTestService(regs *mockRegistrations, payments *mockPayments, gw *mockGateway) *Service {
	return NewService(regs, payments, gw, "rzp_test_key", "INR", time.Second, func(string, ...interface{}) {})
}

func unpaidRegistration() *domain.Registration {
	return &domain.Registration{ID: 1, UserID: 10, EventID: 2, RegistrationAmount: 5000}
}

func TestCreateOrder_ConvertsToMinorUnits(t *testing.T) {
	gw := &mockGateway{}
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, newMockPayments(), gw)

	resp, err := svc.CreateOrder(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.lastOrder.Amount != 500000 {
		t.Fatalf("expected 500000 minor units, got %d", gw.lastOrder.Amount)
	}
	if gw.lastOrder.Receipt != "receipt_1" {
		t.Fatalf("expected deterministic receipt, got %q", gw.lastOrder.Receipt)
	}
	if resp.KeyID != "rzp_test_key" {
		t.Fatalf("expected key id in response, got %q", resp.KeyID)
	}
	if resp.Order.Currency != "INR" {
		t.Fatalf("expected INR, got %q", resp.Order.Currency)
	}
}

func TestCreateOrder_AlreadyPaid(t *testing.T) {
	reg := unpaidRegistration()
	reg.IsPaid = true
	svc := newTestService(&mockRegistrations{reg: reg}, newMockPayments(), &mockGateway{})

	_, err := svc.CreateOrder(context.Background(), 10, 1)
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestCreateOrder_NotOwner(t *testing.T) {
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, newMockPayments(), &mockGateway{})

	_, err := svc.CreateOrder(context.Background(), 99, 1)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestVerify_OrderMismatch(t *testing.T) {
	payments := newMockPayments()
	gw := &mockGateway{payments: map[string]*razorpay.Payment{
		"pay_1": {ID: "pay_1", OrderID: "order_actual", Amount: 500000, Currency: "INR", Status: "captured"},
	}}
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, payments, gw)

	_, err := svc.Verify(context.Background(), 10, VerifyRequest{
		RazorpayOrderID:   "order_claimed",
		RazorpayPaymentID: "pay_1",
		RegistrationID:    1,
	})
	if !errors.Is(err, ErrOrderMismatch) {
		t.Fatalf("expected ErrOrderMismatch, got %v", err)
	}
	if payments.created != 0 {
		t.Fatalf("expected no payment persisted on mismatch")
	}
	if payments.paid[1] {
		t.Fatalf("expected registration left unpaid on mismatch")
	}
}

func TestVerify_RejectsNonCapturedStatus(t *testing.T) {
	for _, status := range []string{"authorized", "failed", "pending", "refunded"} {
		payments := newMockPayments()
		gw := &mockGateway{payments: map[string]*razorpay.Payment{
			"pay_1": {ID: "pay_1", OrderID: "order_1", Amount: 500000, Currency: "INR", Status: status},
		}}
		svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, payments, gw)

		_, err := svc.Verify(context.Background(), 10, VerifyRequest{
			RazorpayOrderID:   "order_1",
			RazorpayPaymentID: "pay_1",
			RegistrationID:    1,
		})
		if !errors.Is(err, ErrNotCaptured) {
			t.Fatalf("status %q: expected ErrNotCaptured, got %v", status, err)
		}
		if payments.created != 0 {
			t.Fatalf("status %q: expected no payment persisted", status)
		}
	}
}

func TestVerify_Success(t *testing.T) {
	payments := newMockPayments()
	gw := &mockGateway{payments: map[string]*razorpay.Payment{
		"pay_1": {ID: "pay_1", OrderID: "order_1", Amount: 500000, Currency: "INR", Status: "captured"},
	}}
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, payments, gw)

	p, err := svc.Verify(context.Background(), 10, VerifyRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RegistrationID:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Amount != 5000 {
		t.Fatalf("expected amount 5000 major units, got %v", p.Amount)
	}
	if p.Currency != "INR" || p.Provider != domain.PaymentProviderRazorpay {
		t.Fatalf("unexpected payment fields: %+v", p)
	}
	if p.RazorpayOrderID != "order_1" || p.RazorpayPaymentID != "pay_1" {
		t.Fatalf("expected identifiers from the gateway response, got %+v", p)
	}
	if !payments.paid[1] {
		t.Fatalf("expected registration marked paid")
	}
	if payments.created != 1 {
		t.Fatalf("expected exactly one payment row, got %d", payments.created)
	}
}

func TestVerify_DuplicateCallIsIdempotent(t *testing.T) {
	payments := newMockPayments()
	gw := &mockGateway{payments: map[string]*razorpay.Payment{
		"pay_1": {ID: "pay_1", OrderID: "order_1", Amount: 500000, Currency: "INR", Status: "captured"},
	}}
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, payments, gw)

	req := VerifyRequest{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RegistrationID: 1}
	first, err := svc.Verify(context.Background(), 10, req)
	if err != nil {
		t.Fatalf("first verify failed: %v", err)
	}
	second, err := svc.Verify(context.Background(), 10, req)
	if err != nil {
		t.Fatalf("second verify failed: %v", err)
	}
	if payments.created != 1 {
		t.Fatalf("expected one payment row after duplicate verify, got %d", payments.created)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same payment row, got %d and %d", first.ID, second.ID)
	}
}

func TestVerify_ConcurrentCallsCreateOnePayment(t *testing.T) {
	payments := newMockPayments()
	gw := &mockGateway{payments: map[string]*razorpay.Payment{
		"pay_1": {ID: "pay_1", OrderID: "order_1", Amount: 500000, Currency: "INR", Status: "captured"},
	}}
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, payments, gw)

	req := VerifyRequest{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RegistrationID: 1}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Verify(context.Background(), 10, req)
		}()
	}
	wg.Wait()

	if payments.created != 1 {
		t.Fatalf("expected at most one payment row, got %d", payments.created)
	}
}

func TestVerify_GatewayTimeout(t *testing.T) {
	gw := &mockGateway{fetchErrs: map[string]error{
		"pay_1": fmt.Errorf("%w: GET /v1/payments/pay_1", razorpay.ErrTimeout),
	}}
	svc := newTestService(&mockRegistrations{reg: unpaidRegistration()}, newMockPayments(), gw)

	_, err := svc.Verify(context.Background(), 10, VerifyRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RegistrationID:    1,
	})
	if !errors.Is(err, ErrGatewayTimeout) {
		t.Fatalf("expected ErrGatewayTimeout, got %v", err)
	}
}

func TestHistory_EnrichmentFailureIsPartial(t *testing.T) {
	payments := newMockPayments()
	payments.stored["pay_ok"] = &domain.Payment{ID: 1, UserID: 10, RazorpayPaymentID: "pay_ok", Amount: 5000}
	payments.stored["pay_gone"] = &domain.Payment{ID: 2, UserID: 10, RazorpayPaymentID: "pay_gone", Amount: 2500}

	gw := &mockGateway{
		payments: map[string]*razorpay.Payment{
			"pay_ok": {ID: "pay_ok", OrderID: "order_1", Amount: 500000, Currency: "INR", Status: "captured"},
		},
		fetchErrs: map[string]error{
			"pay_gone": errors.New("gateway exploded"),
		},
	}
	svc := newTestService(&mockRegistrations{}, payments, gw)

	out, err := svc.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("history must not fail on enrichment errors: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected both payments returned, got %d", len(out))
	}
	for _, ep := range out {
		switch ep.RazorpayPaymentID {
		case "pay_ok":
			if ep.RazorpayDetails == nil {
				t.Fatalf("expected enrichment for pay_ok")
			}
		case "pay_gone":
			if ep.RazorpayDetails != nil {
				t.Fatalf("expected no enrichment for pay_gone")
			}
		}
	}
}
