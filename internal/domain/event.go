package domain

import "time"

type Event struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Venue     string     `json:"venue,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Categories []RegistrationCategory `json:"categories,omitempty" gorm:"foreignKey:EventID"`
}

func (Event) TableName() string { return "events" }

// RegistrationCategory prices a registration tier for one event.
// Price is in major currency units (rupees, not paise).
type RegistrationCategory struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Price     float64   `json:"price" validate:"required,gte=0"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RegistrationCategory) TableName() string { return "registration_categories" }
