package registration

type CreateRequest struct {
	EventID          int64  `json:"event_id" binding:"required"`
	CategoryID       int64  `json:"category_id" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	Designation      string `json:"designation"`
	Affiliation      string `json:"affiliation"`
	MedicalCouncilNo string `json:"medical_council_no"`
	MealPreference   string `json:"meal_preference"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	Pincode          string `json:"pincode"`
}

// UpdateRequest carries the later steps of the multi-step form. Pointer fields
// distinguish "leave as is" from "clear".
type UpdateRequest struct {
	FullName         *string `json:"full_name,omitempty"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone            *string `json:"phone,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Affiliation      *string `json:"affiliation,omitempty"`
	MedicalCouncilNo *string `json:"medical_council_no,omitempty"`
	MealPreference   *string `json:"meal_preference,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	Country          *string `json:"country,omitempty"`
	Pincode          *string `json:"pincode,omitempty"`
}
