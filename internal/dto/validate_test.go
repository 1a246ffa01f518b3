package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func validCourse() Course {
	return Course{
		Code:           "CS101",
		Name:           "Intro to Programming",
		Department:     "Computer Science",
		Credits:        3,
		TotalSemesters: 8,
	}
}

func TestValidateCourse(t *testing.T) {
	v := newValidator()

	require.True(t, ValidateCourse(v, validCourse()).Empty())

	cases := []struct {
		name    string
		mutate  func(*Course)
		field   string
		message string
	}{
		{"missing code", func(c *Course) { c.Code = "" }, "code", "Course code is required"},
		{"missing name", func(c *Course) { c.Name = "" }, "name", "Course name is required"},
		{"name too long", func(c *Course) {
			long := make([]byte, 101)
			for i := range long {
				long[i] = 'x'
			}
			c.Name = string(long)
		}, "name", "Course name cannot exceed 100 characters"},
		{"missing department", func(c *Course) { c.Department = "" }, "department", "Department is required"},
		{"credits zero", func(c *Course) { c.Credits = 0 }, "credits", "Credits must be between 1 and 6"},
		{"credits too high", func(c *Course) { c.Credits = 7 }, "credits", "Credits must be between 1 and 6"},
		{"semesters zero", func(c *Course) { c.TotalSemesters = 0 }, "totalSemesters", "Total semesters must be at least 1"},
		{"description too long", func(c *Course) {
			long := make([]byte, 501)
			for i := range long {
				long[i] = 'x'
			}
			c.Description = string(long)
		}, "description", "Description cannot exceed 500 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			course := validCourse()
			tc.mutate(&course)
			errors := ValidateCourse(v, course)
			require.False(t, errors.Empty())
			require.Equal(t, tc.message, errors[tc.field])
		})
	}
}

func TestValidateTeacher(t *testing.T) {
	v := newValidator()

	teacher := Teacher{Name: "Dr. Rao", Email: "rao@example.com", Phone: "5551234", Department: "Physics"}
	require.True(t, ValidateTeacher(v, teacher).Empty())

	teacher.Email = "not-an-email"
	errors := ValidateTeacher(v, teacher)
	require.Equal(t, "Invalid email format", errors["email"])

	errors = ValidateTeacher(v, Teacher{})
	require.Equal(t, "Name is required", errors["name"])
	require.Equal(t, "Email is required", errors["email"])
	require.Equal(t, "Phone is required", errors["phone"])
	require.Equal(t, "Department is required", errors["department"])
}

func TestValidateGrade(t *testing.T) {
	v := newValidator()

	grade := Grade{StudentCode: "STU001", CourseCode: "CS101", Semester: 1, InternalMarks: 30, ExternalMarks: 50}
	require.True(t, ValidateGrade(v, grade).Empty())

	grade.InternalMarks = 41
	grade.ExternalMarks = 61
	errors := ValidateGrade(v, grade)
	require.Equal(t, "Internal marks must be between 0 and 40", errors["internalMarks"])
	require.Equal(t, "External marks must be between 0 and 60", errors["externalMarks"])

	errors = ValidateGrade(v, Grade{})
	require.Equal(t, "Student code is required", errors["studentCode"])
	require.Equal(t, "Course code is required", errors["courseCode"])
	require.Equal(t, "Semester is required", errors["semester"])
}

func TestValidateGradeBoundaryMarks(t *testing.T) {
	v := newValidator()

	zero := Grade{StudentCode: "STU001", CourseCode: "CS101", Semester: 1}
	require.True(t, ValidateGrade(v, zero).Empty())
	require.Equal(t, 0.0, zero.Total())

	full := Grade{StudentCode: "STU001", CourseCode: "CS101", Semester: 1, InternalMarks: 40, ExternalMarks: 60}
	require.True(t, ValidateGrade(v, full).Empty())
	require.Equal(t, 100.0, full.Total())
}

func TestValidateAttendance(t *testing.T) {
	v := newValidator()

	record := Attendance{StudentCode: "STU001", CourseCode: "CS101", AttendanceDate: "2024-01-10", Status: AttendancePresent}
	require.True(t, ValidateAttendance(v, record).Empty())

	for _, status := range []string{AttendancePresent, AttendanceAbsent, AttendanceLeave} {
		record.Status = status
		require.True(t, ValidateAttendance(v, record).Empty())
	}

	record.Status = "sometimes"
	errors := ValidateAttendance(v, record)
	require.Equal(t, "Status must be PRESENT, ABSENT or LEAVE", errors["status"])

	errors = ValidateAttendance(v, Attendance{})
	require.Equal(t, "Student code is required", errors["studentCode"])
	require.Equal(t, "Course code is required", errors["courseCode"])
	require.Equal(t, "Date is required", errors["attendanceDate"])
	require.Equal(t, "Status is required", errors["status"])
}
