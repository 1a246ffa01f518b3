package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field to the message shown next to it. An empty map
// means the draft passed validation.
type FieldErrors map[string]string

// Empty reports whether the draft passed validation.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

var courseFieldKeys = map[string]string{
	"Code":           "code",
	"Name":           "name",
	"Department":     "department",
	"Credits":        "credits",
	"TotalSemesters": "totalSemesters",
	"Description":    "description",
}

var courseMessages = map[string]string{
	"code.required":           "Course code is required",
	"name.required":           "Course name is required",
	"name.max":                "Course name cannot exceed 100 characters",
	"department.required":     "Department is required",
	"credits.required":        "Credits must be between 1 and 6",
	"credits.min":             "Credits must be between 1 and 6",
	"credits.max":             "Credits must be between 1 and 6",
	"totalSemesters.required": "Total semesters must be at least 1",
	"totalSemesters.min":      "Total semesters must be at least 1",
	"description.max":         "Description cannot exceed 500 characters",
}

var teacherFieldKeys = map[string]string{
	"Name":       "name",
	"Email":      "email",
	"Phone":      "phone",
	"Department": "department",
}

var teacherMessages = map[string]string{
	"name.required":       "Name is required",
	"email.required":      "Email is required",
	"email.email":         "Invalid email format",
	"phone.required":      "Phone is required",
	"department.required": "Department is required",
}

var gradeFieldKeys = map[string]string{
	"StudentCode":   "studentCode",
	"CourseCode":    "courseCode",
	"Semester":      "semester",
	"InternalMarks": "internalMarks",
	"ExternalMarks": "externalMarks",
}

var gradeMessages = map[string]string{
	"studentCode.required": "Student code is required",
	"courseCode.required":  "Course code is required",
	"semester.required":    "Semester is required",
	"semester.min":         "Semester must be at least 1",
	"internalMarks.min":    "Internal marks must be between 0 and 40",
	"internalMarks.max":    "Internal marks must be between 0 and 40",
	"externalMarks.min":    "External marks must be between 0 and 60",
	"externalMarks.max":    "External marks must be between 0 and 60",
}

var attendanceFieldKeys = map[string]string{
	"StudentCode":    "studentCode",
	"CourseCode":     "courseCode",
	"AttendanceDate": "attendanceDate",
	"Status":         "status",
}

var attendanceMessages = map[string]string{
	"studentCode.required":    "Student code is required",
	"courseCode.required":     "Course code is required",
	"attendanceDate.required": "Date is required",
	"status.required":         "Status is required",
	"status.oneof":            "Status must be PRESENT, ABSENT or LEAVE",
}

// ValidateCourse checks a course draft and returns the field error mapping.
func ValidateCourse(v *validator.Validate, course Course) FieldErrors {
	return translate(v.Struct(course), courseFieldKeys, courseMessages)
}

// ValidateTeacher checks a teacher draft and returns the field error mapping.
func ValidateTeacher(v *validator.Validate, teacher Teacher) FieldErrors {
	return translate(v.Struct(teacher), teacherFieldKeys, teacherMessages)
}

// ValidateGrade checks a grade draft and returns the field error mapping.
func ValidateGrade(v *validator.Validate, grade Grade) FieldErrors {
	return translate(v.Struct(grade), gradeFieldKeys, gradeMessages)
}

// ValidateAttendance checks an attendance draft and returns the field error mapping.
func ValidateAttendance(v *validator.Validate, attendance Attendance) FieldErrors {
	return translate(v.Struct(attendance), attendanceFieldKeys, attendanceMessages)
}

func translate(err error, fieldKeys, messages map[string]string) FieldErrors {
	result := FieldErrors{}
	if err == nil {
		return result
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result["form"] = err.Error()
		return result
	}

	for _, fieldErr := range validationErrors {
		key, ok := fieldKeys[fieldErr.StructField()]
		if !ok {
			key = fieldErr.StructField()
		}
		if _, exists := result[key]; exists {
			continue
		}
		message, ok := messages[key+"."+fieldErr.Tag()]
		if !ok {
			message = "Invalid value"
		}
		result[key] = message
	}

	return result
}
