package models

// Student represents a student enrolled at exactly one school.
type Student struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	SchoolID string  `json:"school_id"`
}

// StudentCreate carries the mutable fields for creating a student.
type StudentCreate struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	SchoolID string  `json:"school_id" validate:"required"`
}

// StudentUpdate carries the mutable fields for updating a student.
type StudentUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	SchoolID *string `json:"school_id,omitempty"`
}
