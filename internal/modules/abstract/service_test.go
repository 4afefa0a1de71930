package abstract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"confportal/internal/domain"
)

type memAbstractRepo struct {
	byID   map[int64]*domain.Abstract
	nextID int64
}

func newMemAbstractRepo() *memAbstractRepo {
	return &memAbstractRepo{byID: map[int64]*domain.Abstract{}}
}

func (m *memAbstractRepo) Create(ctx context.Context, a *domain.Abstract) error {
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAbstractRepo) GetByID(ctx context.Context, id int64) (*domain.Abstract, error) {
	if a, ok := m.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memAbstractRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Abstract, error) {
	var out []domain.Abstract
	for _, a := range m.byID {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAbstractRepo) Update(ctx context.Context, a *domain.Abstract) error {
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAbstractRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

func TestCreate_AuthorOrderIsPreserved(t *testing.T) {
	svc := NewService(newMemAbstractRepo())

	a, err := svc.Create(context.Background(), 10, CreateRequest{
		EventID: 2,
		Title:   "Endoscopic outcomes",
		Body:    "...",
		Authors: []AuthorInput{
			{Name: "First Author", Presenting: true},
			{Name: "Second Author"},
			{Name: "Third Author"},
		},
	})
	require.NoError(t, err)
	require.Len(t, a.Authors, 3)
	for i, author := range a.Authors {
		assert.Equal(t, i, author.Position)
	}
	assert.Equal(t, domain.AbstractDraft, a.Status)
}

func TestCreate_RequiresAuthors(t *testing.T) {
	svc := NewService(newMemAbstractRepo())

	_, err := svc.Create(context.Background(), 10, CreateRequest{EventID: 2, Title: "t", Body: "b"})
	assert.ErrorIs(t, err, ErrNoAuthors)
}

func TestUpdate_ReplacesAuthorsWholesale(t *testing.T) {
	repo := newMemAbstractRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), 10, CreateRequest{
		EventID: 2, Title: "t", Body: "b",
		Authors: []AuthorInput{{Name: "Old One"}, {Name: "Old Two"}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), 10, a.ID, UpdateRequest{
		Title: "t2", Body: "b2", Submit: true,
		Authors: []AuthorInput{{Name: "New Only", Presenting: true}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Authors, 1)
	assert.Equal(t, "New Only", updated.Authors[0].Name)
	assert.Equal(t, domain.AbstractSubmitted, updated.Status)
}

func TestUpdate_FrozenAfterDecision(t *testing.T) {
	repo := newMemAbstractRepo()
	svc := NewService(repo)

	a, _ := svc.Create(context.Background(), 10, CreateRequest{
		EventID: 2, Title: "t", Body: "b", Authors: []AuthorInput{{Name: "A"}},
	})
	stored := repo.byID[a.ID]
	stored.Status = domain.AbstractAccepted

	_, err := svc.Update(context.Background(), 10, a.ID, UpdateRequest{
		Title: "t2", Body: "b2", Authors: []AuthorInput{{Name: "B"}},
	})
	assert.ErrorIs(t, err, ErrLocked)

	err = svc.Delete(context.Background(), 10, a.ID)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestGet_OwnerScoped(t *testing.T) {
	svc := NewService(newMemAbstractRepo())

	a, _ := svc.Create(context.Background(), 10, CreateRequest{
		EventID: 2, Title: "t", Body: "b", Authors: []AuthorInput{{Name: "A"}},
	})

	_, err := svc.Get(context.Background(), 11, a.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Get(context.Background(), 10, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
