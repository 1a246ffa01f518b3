package dto

// Course describes an offered course. Credits and semester bounds are
// enforced client-side before any create or update request is issued.
type Course struct {
	ID             uint   `json:"id,omitempty"`
	Code           string `json:"code" validate:"required"`
	Name           string `json:"name" validate:"required,max=100"`
	Department     string `json:"department" validate:"required"`
	Credits        int    `json:"credits" validate:"required,min=1,max=6"`
	TotalSemesters int    `json:"totalSemesters" validate:"required,min=1"`
	Description    string `json:"description,omitempty" validate:"max=500"`
	IsActive       bool   `json:"isActive"`
}
