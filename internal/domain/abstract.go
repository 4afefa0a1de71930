package domain

import "time"

type AbstractStatus string

const (
	AbstractDraft     AbstractStatus = "draft"
	AbstractSubmitted AbstractStatus = "submitted"
	AbstractAccepted  AbstractStatus = "accepted"
	AbstractRejected  AbstractStatus = "rejected"
)

type Abstract struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"user_id" validate:"required"`
	EventID        int64          `json:"event_id" validate:"required"`
	RegistrationID *int64         `json:"registration_id,omitempty"`
	Title          string         `json:"title" validate:"required"`
	Track          string         `json:"track,omitempty"`
	Body           string         `json:"body" gorm:"type:text" validate:"required"`
	Status         AbstractStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Authors []AbstractAuthor `json:"authors,omitempty" gorm:"foreignKey:AbstractID"`
}

func (Abstract) TableName() string { return "abstracts" }

// AbstractAuthor rows are replaced wholesale whenever the abstract is updated,
// so Position is authoritative for display order.
type AbstractAuthor struct {
	ID          int64  `json:"id"`
	AbstractID  int64  `json:"abstract_id" gorm:"index;not null"`
	Position    int    `json:"position"`
	Name        string `json:"name" validate:"required"`
	Affiliation string `json:"affiliation,omitempty"`
	Email       string `json:"email,omitempty"`
	Presenting  bool   `json:"presenting"`
}

func (AbstractAuthor) TableName() string { return "abstract_authors" }
