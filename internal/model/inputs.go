package model

type RegisterUserInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

type UpdateSessionStatusInput struct {
	Status          SessionStatus `json:"status"`
	RegistrationFee float64       `json:"registration_fee"`
	Reason          string        `json:"reason"`
	Feedback        string        `json:"feedback"`
}

type UpdateSessionInput struct {
	Title                 string        `json:"session_title"`
	Description           string        `json:"description"`
	RegistrationStartDate string        `json:"registration_start_date"`
	RegistrationEndDate   string        `json:"registration_end_date"`
	ClassStartTime        string        `json:"class_start_time"`
	ClassEndTime          string        `json:"class_end_time"`
	Duration              string        `json:"session_duration"`
	RegistrationFee       float64       `json:"registration_fee"`
	Category              string        `json:"category"`
	Status                SessionStatus `json:"status"`
}

type UpdateNoteInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateMaterialInput struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Img   string `json:"img"`
}

// RegisterResult mirrors the wire shape clients expect from registration:
// insertedId is null when the email was already registered.
type RegisterResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedId *string `json:"insertedId"`
}

type InsertResult struct {
	InsertedId string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedId    *string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
