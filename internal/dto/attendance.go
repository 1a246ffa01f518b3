package dto

// Attendance status values accepted by the backend.
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLeave   = "LEAVE"
)

// Attendance records presence of a student in a course on a given date.
// Records reference students and courses by code; the numeric IDs are
// resolved through lookups before a create is issued.
type Attendance struct {
	ID             uint   `json:"id,omitempty"`
	StudentID      uint   `json:"studentId,omitempty"`
	StudentCode    string `json:"studentCode" validate:"required"`
	CourseID       uint   `json:"courseId,omitempty"`
	CourseCode     string `json:"courseCode" validate:"required"`
	AttendanceDate string `json:"attendanceDate" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=PRESENT ABSENT LEAVE"`
	Semester       int    `json:"semester,omitempty"`
	Remarks        string `json:"remarks,omitempty"`
}
