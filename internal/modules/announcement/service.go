package announcement

import (
	"context"

	"confportal/internal/domain"
)

type announcementRepo interface {
	Create(ctx context.Context, a *domain.Announcement) error
	List(ctx context.Context, limit int) ([]domain.Announcement, error)
}

type Service struct {
	announcements announcementRepo
	hub           *Hub
}

func NewService(announcements announcementRepo, hub *Hub) *Service {
	return &Service{announcements: announcements, hub: hub}
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.Announcement, error) {
	return s.announcements.List(ctx, limit)
}

// Publish stores the announcement and pushes it to live subscribers. The push
// is best-effort; the stored row is the source of truth.
func (s *Service) Publish(ctx context.Context, adminID int64, title, body string) (*domain.Announcement, error) {
	a := &domain.Announcement{
		Title:       title,
		Body:        body,
		PublishedBy: adminID,
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Broadcast(a)
	}
	return a, nil
}
