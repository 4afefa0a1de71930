package domain

import "time"

type Announcement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Body        string    `json:"body" gorm:"type:text"`
	PublishedBy int64     `json:"published_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Announcement) TableName() string { return "announcements" }
