package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

func TestAttendanceServiceLifecycle(t *testing.T) {
	client := newBackend(t)
	svc := NewAttendanceService(client, zerolog.Nop())
	students := NewStudentService(client, zerolog.Nop())
	courses := NewCourseService(client, zerolog.Nop())
	seedGradeRefs(t, students, courses)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.Attendance{
		StudentCode:    "STU001",
		CourseCode:     "CS101",
		AttendanceDate: "2024-01-10",
		Status:         dto.AttendancePresent,
		Semester:       1,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotZero(t, created.StudentID)

	created.Status = dto.AttendanceLeave
	updated, err := svc.Update(ctx, created.ID, created)
	require.NoError(t, err)
	require.Equal(t, dto.AttendanceLeave, updated.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestAttendanceServiceCreateRejectsUnknownCourse(t *testing.T) {
	client := newBackend(t)
	svc := NewAttendanceService(client, zerolog.Nop())
	students := NewStudentService(client, zerolog.Nop())
	ctx := context.Background()

	_, err := students.Create(ctx, dto.Student{Code: "STU001", FirstName: "Ann", LastName: "Lee", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.Attendance{
		StudentCode:    "STU001",
		CourseCode:     "MISSING",
		AttendanceDate: "2024-01-10",
		Status:         dto.AttendancePresent,
	})
	require.Error(t, err)
}

func TestAttendanceServiceDateRangeAndPercentage(t *testing.T) {
	client := newBackend(t)
	svc := NewAttendanceService(client, zerolog.Nop())
	students := NewStudentService(client, zerolog.Nop())
	courses := NewCourseService(client, zerolog.Nop())
	seedGradeRefs(t, students, courses)
	ctx := context.Background()

	records := []dto.Attendance{
		{StudentCode: "STU001", CourseCode: "CS101", AttendanceDate: "2024-01-10", Status: dto.AttendancePresent, Semester: 1},
		{StudentCode: "STU001", CourseCode: "CS101", AttendanceDate: "2024-01-17", Status: dto.AttendancePresent, Semester: 1},
		{StudentCode: "STU001", CourseCode: "CS101", AttendanceDate: "2024-01-24", Status: dto.AttendanceAbsent, Semester: 1},
		{StudentCode: "STU001", CourseCode: "CS101", AttendanceDate: "2024-02-07", Status: dto.AttendanceLeave, Semester: 1},
	}
	for _, record := range records {
		_, err := svc.Create(ctx, record)
		require.NoError(t, err)
	}

	january, err := svc.ListByDateRange(ctx, "2024-01-01", "2024-01-31", 1)
	require.NoError(t, err)
	require.Len(t, january, 3)

	byStudent, err := svc.ListByStudent(ctx, "STU001")
	require.NoError(t, err)
	require.Len(t, byStudent, 4)

	bySemester, err := svc.ListBySemester(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bySemester, 4)

	percentage, err := svc.Percentage(ctx, "STU001", 1)
	require.NoError(t, err)
	require.Equal(t, "50.0", percentage)
}
