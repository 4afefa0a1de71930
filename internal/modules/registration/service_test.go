package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"confportal/internal/domain"
)

type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	if reg != nil {
		reg.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRegistrationRepo) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepo) UpdateApplicantFields(ctx context.Context, id int64, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) GetCategory(ctx context.Context, id int64) (*domain.RegistrationCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationCategory), args.Error(1)
}

func TestCreate_AmountComesFromCategory(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	events.On("GetByID", mock.Anything, int64(2)).Return(&domain.Event{ID: 2, IsActive: true}, nil)
	events.On("GetCategory", mock.Anything, int64(7)).Return(&domain.RegistrationCategory{ID: 7, EventID: 2, Price: 5000, Currency: "INR"}, nil)
	regs.On("Create", mock.Anything, mock.Anything).Return(nil)

	reg, err := svc.Create(context.Background(), 10, CreateRequest{
		EventID:    2,
		CategoryID: 7,
		FullName:   "Dr. A. Verma",
		Email:      "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(5000), reg.RegistrationAmount)
	assert.False(t, reg.IsPaid)
	assert.False(t, reg.RegNumGenerated)
	regs.AssertExpectations(t)
}

func TestCreate_CategoryFromOtherEvent(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	events.On("GetByID", mock.Anything, int64(2)).Return(&domain.Event{ID: 2, IsActive: true}, nil)
	events.On("GetCategory", mock.Anything, int64(7)).Return(&domain.RegistrationCategory{ID: 7, EventID: 3, Price: 100}, nil)

	_, err := svc.Create(context.Background(), 10, CreateRequest{EventID: 2, CategoryID: 7, FullName: "x", Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrCategoryMismatch)
	regs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InactiveEvent(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	events.On("GetByID", mock.Anything, int64(2)).Return(&domain.Event{ID: 2, IsActive: false}, nil)

	_, err := svc.Create(context.Background(), 10, CreateRequest{EventID: 2, CategoryID: 7, FullName: "x", Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrEventInactive)
}

func TestUpdate_PaidRegistrationIsLocked(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	regs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Registration{ID: 5, UserID: 10, IsPaid: true}, nil)

	city := "Hyderabad"
	_, err := svc.Update(context.Background(), 10, 5, UpdateRequest{City: &city})
	assert.ErrorIs(t, err, ErrPaidLocked)
	regs.AssertNotCalled(t, "UpdateApplicantFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_OnlySuppliedFields(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	regs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Registration{ID: 5, UserID: 10}, nil)
	regs.On("UpdateApplicantFields", mock.Anything, int64(5), map[string]any{"city": "Hyderabad"}).Return(nil)

	city := "Hyderabad"
	_, err := svc.Update(context.Background(), 10, 5, UpdateRequest{City: &city})
	require.NoError(t, err)
	regs.AssertExpectations(t)
}

func TestGet_NotOwner(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	regs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Registration{ID: 5, UserID: 11}, nil)

	_, err := svc.Get(context.Background(), 10, 5)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestGet_NotFound(t *testing.T) {
	regs := new(MockRegistrationRepo)
	events := new(MockEventRepo)
	svc := NewService(regs, events)

	regs.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 10, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
