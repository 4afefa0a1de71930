package abstract

type AuthorInput struct {
	Name        string `json:"name" binding:"required"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email" binding:"omitempty,email"`
	Presenting  bool   `json:"presenting"`
}

type CreateRequest struct {
	EventID        int64         `json:"event_id" binding:"required"`
	RegistrationID *int64        `json:"registration_id,omitempty"`
	Title          string        `json:"title" binding:"required"`
	Track          string        `json:"track"`
	Body           string        `json:"body" binding:"required"`
	Authors        []AuthorInput `json:"authors" binding:"required,dive"`
	Submit         bool          `json:"submit"`
}

type UpdateRequest struct {
	Title   string        `json:"title" binding:"required"`
	Track   string        `json:"track"`
	Body    string        `json:"body" binding:"required"`
	Authors []AuthorInput `json:"authors" binding:"required,dive"`
	Submit  bool          `json:"submit"`
}
