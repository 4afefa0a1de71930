package abstract

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confportal/internal/domain"
)

type abstractRepo interface {
	Create(ctx context.Context, a *domain.Abstract) error
	GetByID(ctx context.Context, id int64) (*domain.Abstract, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Abstract, error)
	Update(ctx context.Context, a *domain.Abstract) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	abstracts abstractRepo
}

func NewService(abstracts abstractRepo) *Service {
	return &Service{abstracts: abstracts}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*domain.Abstract, error) {
	if len(req.Authors) == 0 {
		return nil, ErrNoAuthors
	}

	status := domain.AbstractDraft
	if req.Submit {
		status = domain.AbstractSubmitted
	}

	a := &domain.Abstract{
		UserID:         userID,
		EventID:        req.EventID,
		RegistrationID: req.RegistrationID,
		Title:          req.Title,
		Track:          req.Track,
		Body:           req.Body,
		Status:         status,
		Authors:        toAuthors(req.Authors),
	}
	if err := s.abstracts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Abstract, error) {
	a, err := s.abstracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrNotOwner
	}
	return a, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Abstract, error) {
	return s.abstracts.ListByUser(ctx, userID)
}

// Update rewrites the abstract and replaces its author list. Once review has
// decided (accepted/rejected) the abstract is frozen.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateRequest) (*domain.Abstract, error) {
	a, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if a.Status == domain.AbstractAccepted || a.Status == domain.AbstractRejected {
		return nil, ErrLocked
	}
	if len(req.Authors) == 0 {
		return nil, ErrNoAuthors
	}

	a.Title = req.Title
	a.Track = req.Track
	a.Body = req.Body
	if req.Submit {
		a.Status = domain.AbstractSubmitted
	}
	a.Authors = toAuthors(req.Authors)

	if err := s.abstracts.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.abstracts.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	a, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if a.Status == domain.AbstractAccepted || a.Status == domain.AbstractRejected {
		return ErrLocked
	}
	return s.abstracts.Delete(ctx, id)
}

func toAuthors(in []AuthorInput) []domain.AbstractAuthor {
	authors := make([]domain.AbstractAuthor, 0, len(in))
	for i, a := range in {
		authors = append(authors, domain.AbstractAuthor{
			Position:    i,
			Name:        a.Name,
			Affiliation: a.Affiliation,
			Email:       a.Email,
			Presenting:  a.Presenting,
		})
	}
	return authors
}
