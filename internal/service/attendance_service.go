package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/pkg/rest"
)

// ErrAttendanceNotFound indicates the backend had no attendance record for the id.
var ErrAttendanceNotFound = errors.New("attendance record not found")

// AttendanceService maps attendance operations onto backend requests.
type AttendanceService interface {
	Create(ctx context.Context, attendance dto.Attendance) (dto.Attendance, error)
	Update(ctx context.Context, id uint, attendance dto.Attendance) (dto.Attendance, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (dto.Attendance, error)
	ListByStudent(ctx context.Context, studentCode string) ([]dto.Attendance, error)
	ListByStudentSemester(ctx context.Context, studentCode string, semester int) ([]dto.Attendance, error)
	ListByCourse(ctx context.Context, courseCode string) ([]dto.Attendance, error)
	ListBySemester(ctx context.Context, semester int) ([]dto.Attendance, error)
	ListByDateRange(ctx context.Context, startDate, endDate string, semester int) ([]dto.Attendance, error)
	Percentage(ctx context.Context, studentCode string, semester int) (string, error)
}

type attendanceService struct {
	client *rest.Client
	logger zerolog.Logger
}

// NewAttendanceService constructs the attendance service module.
func NewAttendanceService(client *rest.Client, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		client: client,
		logger: logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) Create(ctx context.Context, attendance dto.Attendance) (dto.Attendance, error) {
	env, err := s.client.Post(ctx, "/attendance", attendance)
	if err != nil {
		return dto.Attendance{}, err
	}
	return rest.DecodeOne[dto.Attendance](env)
}

func (s *attendanceService) Update(ctx context.Context, id uint, attendance dto.Attendance) (dto.Attendance, error) {
	env, err := s.client.Put(ctx, fmt.Sprintf("/attendance/%d", id), attendance)
	if err != nil {
		return dto.Attendance{}, notFoundAs(err, ErrAttendanceNotFound)
	}
	return rest.DecodeOne[dto.Attendance](env)
}

func (s *attendanceService) Delete(ctx context.Context, id uint) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/attendance/%d", id))
	return notFoundAs(err, ErrAttendanceNotFound)
}

func (s *attendanceService) GetByID(ctx context.Context, id uint) (dto.Attendance, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/attendance/%d", id), nil)
	if err != nil {
		return dto.Attendance{}, notFoundAs(err, ErrAttendanceNotFound)
	}
	return rest.DecodeOne[dto.Attendance](env)
}

func (s *attendanceService) ListByStudent(ctx context.Context, studentCode string) ([]dto.Attendance, error) {
	env, err := s.client.Get(ctx, "/attendance/student/"+url.PathEscape(studentCode), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Attendance](env)
}

func (s *attendanceService) ListByStudentSemester(ctx context.Context, studentCode string, semester int) ([]dto.Attendance, error) {
	path := fmt.Sprintf("/attendance/student/%s/semester/%d", url.PathEscape(studentCode), semester)
	env, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Attendance](env)
}

func (s *attendanceService) ListByCourse(ctx context.Context, courseCode string) ([]dto.Attendance, error) {
	env, err := s.client.Get(ctx, "/attendance/course/"+url.PathEscape(courseCode), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Attendance](env)
}

func (s *attendanceService) ListBySemester(ctx context.Context, semester int) ([]dto.Attendance, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/attendance/semester/%d", semester), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Attendance](env)
}

func (s *attendanceService) ListByDateRange(ctx context.Context, startDate, endDate string, semester int) ([]dto.Attendance, error) {
	params := url.Values{}
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)
	params.Set("semester", strconv.Itoa(semester))

	env, err := s.client.Get(ctx, "/attendance/date-range", params)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Attendance](env)
}

func (s *attendanceService) Percentage(ctx context.Context, studentCode string, semester int) (string, error) {
	params := url.Values{}
	params.Set("semester", strconv.Itoa(semester))

	path := "/attendance/student/" + url.PathEscape(studentCode) + "/percentage"
	env, err := s.client.Get(ctx, path, params)
	if err != nil {
		return "", notFoundAs(err, ErrStudentNotFound)
	}
	return env.Percentage, nil
}
