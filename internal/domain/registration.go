package domain

import "time"

// Registration is a user's event-attendance record. It is created unpaid;
// IsPaid flips to true exactly once, inside the payment verification
// transaction, never from client input.
type Registration struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id" validate:"required"`
	EventID            int64     `json:"event_id" validate:"required"`
	CategoryID         int64     `json:"category_id" validate:"required"`
	FullName           string    `json:"full_name" validate:"required"`
	Email              string    `json:"email" validate:"required,email"`
	Phone              string    `json:"phone,omitempty"`
	Gender             string    `json:"gender,omitempty"`
	Designation        string    `json:"designation,omitempty"`
	Affiliation        string    `json:"affiliation,omitempty"`
	MedicalCouncilNo   string    `json:"medical_council_no,omitempty"`
	MealPreference     string    `json:"meal_preference,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Country            string    `json:"country,omitempty"`
	Pincode            string    `json:"pincode,omitempty"`
	RegistrationAmount float64   `json:"registration_amount"`
	IsPaid             bool      `json:"is_paid"`
	RegNumGenerated    bool      `json:"reg_num_generated"`
	RegistrationNo     string    `json:"registration_no,omitempty" gorm:"type:varchar(32)"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	User     *User                 `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Event    *Event                `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Category *RegistrationCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Registration) TableName() string { return "registrations" }
