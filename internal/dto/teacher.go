package dto

// Teacher is the faculty record shape exchanged with the backend.
type Teacher struct {
	ID             uint   `json:"id,omitempty"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Department     string `json:"department" validate:"required"`
	Qualification  string `json:"qualification,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	IsActive       bool   `json:"isActive"`
}
