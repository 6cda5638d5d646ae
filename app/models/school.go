package models

// School represents an institution that students belong to.
type School struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

// SchoolCreate carries the mutable fields for creating a school.
type SchoolCreate struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address,omitempty"`
}

// SchoolUpdate carries the mutable fields for updating a school.
type SchoolUpdate struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}
