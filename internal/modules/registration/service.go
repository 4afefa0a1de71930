package registration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confportal/internal/domain"
)

type registrationRepo interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id int64) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error)
	UpdateApplicantFields(ctx context.Context, id int64, updates map[string]any) error
}

type eventRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetCategory(ctx context.Context, id int64) (*domain.RegistrationCategory, error)
}

type Service struct {
	registrations registrationRepo
	events        eventRepo
}

func NewService(registrations registrationRepo, events eventRepo) *Service {
	return &Service{registrations: registrations, events: events}
}

// Create stores an unpaid registration. The payable amount is copied from the
// selected category's price on the server; the client cannot set it.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*domain.Registration, error) {
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !event.IsActive {
		return nil, ErrEventInactive
	}

	category, err := s.events.GetCategory(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if category.EventID != event.ID {
		return nil, ErrCategoryMismatch
	}

	reg := &domain.Registration{
		UserID:             userID,
		EventID:            event.ID,
		CategoryID:         category.ID,
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Gender:             req.Gender,
		Designation:        req.Designation,
		Affiliation:        req.Affiliation,
		MedicalCouncilNo:   req.MedicalCouncilNo,
		MealPreference:     req.MealPreference,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		Pincode:            req.Pincode,
		RegistrationAmount: category.Price,
		IsPaid:             false,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Registration, error) {
	reg, err := s.registrations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if reg.UserID != userID {
		return nil, ErrNotOwner
	}
	return reg, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Registration, error) {
	return s.registrations.ListByUser(ctx, userID)
}

// Update saves a later step of the registration form. Paid registrations are
// immutable through this path.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateRequest) (*domain.Registration, error) {
	reg, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if reg.IsPaid {
		return nil, ErrPaidLocked
	}

	updates := map[string]any{}
	setIf(updates, "full_name", req.FullName)
	setIf(updates, "email", req.Email)
	setIf(updates, "phone", req.Phone)
	setIf(updates, "gender", req.Gender)
	setIf(updates, "designation", req.Designation)
	setIf(updates, "affiliation", req.Affiliation)
	setIf(updates, "medical_council_no", req.MedicalCouncilNo)
	setIf(updates, "meal_preference", req.MealPreference)
	setIf(updates, "city", req.City)
	setIf(updates, "state", req.State)
	setIf(updates, "country", req.Country)
	setIf(updates, "pincode", req.Pincode)

	if len(updates) == 0 {
		return reg, nil
	}
	if err := s.registrations.UpdateApplicantFields(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.registrations.GetByID(ctx, id)
}

func setIf(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
