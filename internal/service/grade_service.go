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

// ErrGradeNotFound indicates the backend had no grade for the id.
var ErrGradeNotFound = errors.New("grade not found")

// GradeService maps grade operations onto backend requests. The read family
// is keyed by human-readable student and course codes; the analytics reads
// return string-typed computed metrics.
type GradeService interface {
	Create(ctx context.Context, grade dto.Grade) (dto.Grade, error)
	Update(ctx context.Context, id uint, grade dto.Grade) (dto.Grade, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (dto.Grade, error)
	ListByStudent(ctx context.Context, studentCode string) ([]dto.Grade, error)
	ListByStudentSemester(ctx context.Context, studentCode string, semester int) ([]dto.Grade, error)
	ListByCourse(ctx context.Context, courseCode string) ([]dto.Grade, error)
	ListByCourseSemester(ctx context.Context, courseCode string, semester int) ([]dto.Grade, error)
	StudentAverage(ctx context.Context, studentCode string) (string, error)
	StudentGPA(ctx context.Context, studentCode string, semester int) (string, error)
}

type gradeService struct {
	client *rest.Client
	logger zerolog.Logger
}

// NewGradeService constructs the grade service module.
func NewGradeService(client *rest.Client, logger zerolog.Logger) GradeService {
	return &gradeService{
		client: client,
		logger: logger.With().Str("component", "grade_service").Logger(),
	}
}

func (s *gradeService) Create(ctx context.Context, grade dto.Grade) (dto.Grade, error) {
	env, err := s.client.Post(ctx, "/grade", grade)
	if err != nil {
		return dto.Grade{}, err
	}
	return rest.DecodeOne[dto.Grade](env)
}

func (s *gradeService) Update(ctx context.Context, id uint, grade dto.Grade) (dto.Grade, error) {
	env, err := s.client.Put(ctx, fmt.Sprintf("/grade/%d", id), grade)
	if err != nil {
		return dto.Grade{}, notFoundAs(err, ErrGradeNotFound)
	}
	return rest.DecodeOne[dto.Grade](env)
}

func (s *gradeService) Delete(ctx context.Context, id uint) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/grade/%d", id))
	return notFoundAs(err, ErrGradeNotFound)
}

func (s *gradeService) GetByID(ctx context.Context, id uint) (dto.Grade, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/grade/%d", id), nil)
	if err != nil {
		return dto.Grade{}, notFoundAs(err, ErrGradeNotFound)
	}
	return rest.DecodeOne[dto.Grade](env)
}

func (s *gradeService) ListByStudent(ctx context.Context, studentCode string) ([]dto.Grade, error) {
	env, err := s.client.Get(ctx, "/grade/student/"+url.PathEscape(studentCode), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Grade](env)
}

func (s *gradeService) ListByStudentSemester(ctx context.Context, studentCode string, semester int) ([]dto.Grade, error) {
	path := fmt.Sprintf("/grade/student/%s/semester/%d", url.PathEscape(studentCode), semester)
	env, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Grade](env)
}

func (s *gradeService) ListByCourse(ctx context.Context, courseCode string) ([]dto.Grade, error) {
	env, err := s.client.Get(ctx, "/grade/course/"+url.PathEscape(courseCode), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Grade](env)
}

func (s *gradeService) ListByCourseSemester(ctx context.Context, courseCode string, semester int) ([]dto.Grade, error) {
	path := fmt.Sprintf("/grade/course/%s/semester/%d", url.PathEscape(courseCode), semester)
	env, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Grade](env)
}

func (s *gradeService) StudentAverage(ctx context.Context, studentCode string) (string, error) {
	env, err := s.client.Get(ctx, "/grade/student/"+url.PathEscape(studentCode)+"/average", nil)
	if err != nil {
		return "", notFoundAs(err, ErrStudentNotFound)
	}
	return env.AverageMarks, nil
}

func (s *gradeService) StudentGPA(ctx context.Context, studentCode string, semester int) (string, error) {
	params := url.Values{}
	params.Set("semester", strconv.Itoa(semester))

	env, err := s.client.Get(ctx, "/grade/student/"+url.PathEscape(studentCode)+"/gpa", params)
	if err != nil {
		return "", notFoundAs(err, ErrStudentNotFound)
	}
	return env.GPA, nil
}
