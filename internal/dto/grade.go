package dto

// Grade links a student and a course for a semester. Marks are range-checked
// before submission; the total is always the arithmetic sum of internal and
// external marks and is never edited independently. GradePoint is computed
// server-side.
type Grade struct {
	ID            uint    `json:"id,omitempty"`
	StudentID     uint    `json:"studentId,omitempty"`
	StudentCode   string  `json:"studentCode" validate:"required"`
	StudentName   string  `json:"studentName,omitempty"`
	CourseID      uint    `json:"courseId,omitempty"`
	CourseCode    string  `json:"courseCode" validate:"required"`
	CourseName    string  `json:"courseName,omitempty"`
	Semester      int     `json:"semester" validate:"required,min=1"`
	InternalMarks float64 `json:"internalMarks" validate:"min=0,max=40"`
	ExternalMarks float64 `json:"externalMarks" validate:"min=0,max=60"`
	TotalMarks    float64 `json:"totalMarks,omitempty"`
	GradePoint    float64 `json:"gradePoint,omitempty"`
	Remarks       string  `json:"remarks,omitempty"`
}

// Total returns the derived total marks for the grade.
func (g Grade) Total() float64 {
	return g.InternalMarks + g.ExternalMarks
}
