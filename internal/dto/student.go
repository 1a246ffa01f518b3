package dto

// Student is the flat record shape exchanged with the backend. An unsaved
// draft carries a zero ID; the server assigns one on creation.
type Student struct {
	ID              uint   `json:"id,omitempty"`
	Code            string `json:"code,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	AdmissionYear   int    `json:"admissionYear"`
	BranchCode      string `json:"branchCode"`
	Course          string `json:"course"`
	CurrentSemester int    `json:"currentSemester"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	ZipCode         string `json:"zipCode,omitempty"`
	IsActive        bool   `json:"isActive"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// StudentPerformance is the analytics read for a semester/branch cohort.
type StudentPerformance struct {
	StudentID            uint    `json:"studentId,omitempty"`
	Name                 string  `json:"name,omitempty"`
	GPA                  float64 `json:"gpa,omitempty"`
	AttendancePercentage float64 `json:"attendancePercentage,omitempty"`
	AverageGrade         float64 `json:"averageGrade,omitempty"`
}
