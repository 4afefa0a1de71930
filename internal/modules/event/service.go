package event

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confportal/internal/domain"
)

var ErrNotFound = errors.New("event not found")

type eventRepo interface {
	ListActive(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type Service struct {
	events eventRepo
}

func NewService(events eventRepo) *Service {
	return &Service{events: events}
}

func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListActive(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
