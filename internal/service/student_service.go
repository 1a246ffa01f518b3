package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/pkg/rest"
)

// ErrStudentNotFound indicates the backend had no student for the id or code.
var ErrStudentNotFound = errors.New("student not found")

// StudentService maps student operations onto backend requests. Each method is
// a thin pass-through: inputs become path segments or query parameters and no
// payload transformation happens beyond JSON decoding.
type StudentService interface {
	Create(ctx context.Context, student dto.Student) (dto.Student, error)
	Update(ctx context.Context, id uint, student dto.Student) (dto.Student, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]dto.Student, int, error)
	GetByID(ctx context.Context, id uint) (dto.Student, error)
	GetByCode(ctx context.Context, code string) (dto.Student, error)
	Search(ctx context.Context, params url.Values) ([]dto.Student, error)
	ListBySemester(ctx context.Context, semester int) ([]dto.Student, error)
	ListByBranch(ctx context.Context, branchCode string) ([]dto.Student, error)
	ListActive(ctx context.Context) ([]dto.Student, int, error)
	Performance(ctx context.Context, semester int, branchCode string) ([]dto.StudentPerformance, error)
	Deactivate(ctx context.Context, id uint) error
}

type studentService struct {
	client *rest.Client
	logger zerolog.Logger
}

// NewStudentService constructs the student service module.
func NewStudentService(client *rest.Client, logger zerolog.Logger) StudentService {
	return &studentService{
		client: client,
		logger: logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) Create(ctx context.Context, student dto.Student) (dto.Student, error) {
	env, err := s.client.Post(ctx, "/student", student)
	if err != nil {
		return dto.Student{}, err
	}
	return rest.DecodeOne[dto.Student](env)
}

func (s *studentService) Update(ctx context.Context, id uint, student dto.Student) (dto.Student, error) {
	env, err := s.client.Put(ctx, fmt.Sprintf("/student/%d", id), student)
	if err != nil {
		return dto.Student{}, notFoundAs(err, ErrStudentNotFound)
	}
	return rest.DecodeOne[dto.Student](env)
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/student/%d", id))
	return notFoundAs(err, ErrStudentNotFound)
}

func (s *studentService) List(ctx context.Context) ([]dto.Student, int, error) {
	return listWithTotal[dto.Student](ctx, s.client, "/student")
}

func (s *studentService) GetByID(ctx context.Context, id uint) (dto.Student, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/student/%d", id), nil)
	if err != nil {
		return dto.Student{}, notFoundAs(err, ErrStudentNotFound)
	}
	return rest.DecodeOne[dto.Student](env)
}

func (s *studentService) GetByCode(ctx context.Context, code string) (dto.Student, error) {
	env, err := s.client.Get(ctx, "/student/code/"+url.PathEscape(code), nil)
	if err != nil {
		return dto.Student{}, notFoundAs(err, ErrStudentNotFound)
	}
	return rest.DecodeOne[dto.Student](env)
}

func (s *studentService) Search(ctx context.Context, params url.Values) ([]dto.Student, error) {
	env, err := s.client.Get(ctx, "/student/search", params)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Student](env)
}

func (s *studentService) ListBySemester(ctx context.Context, semester int) ([]dto.Student, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/student/semester/%d", semester), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Student](env)
}

func (s *studentService) ListByBranch(ctx context.Context, branchCode string) ([]dto.Student, error) {
	env, err := s.client.Get(ctx, "/student/branch/"+url.PathEscape(branchCode), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Student](env)
}

func (s *studentService) ListActive(ctx context.Context) ([]dto.Student, int, error) {
	return listWithTotal[dto.Student](ctx, s.client, "/student/active")
}

func (s *studentService) Performance(ctx context.Context, semester int, branchCode string) ([]dto.StudentPerformance, error) {
	params := url.Values{}
	params.Set("semester", strconv.Itoa(semester))
	params.Set("branchCode", branchCode)

	env, err := s.client.Get(ctx, "/student/performance", params)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.StudentPerformance](env)
}

func (s *studentService) Deactivate(ctx context.Context, id uint) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/student/%d/deactivate", id), nil)
	return notFoundAs(err, ErrStudentNotFound)
}

// listWithTotal fetches a list endpoint and resolves the collection size from
// the envelope total, falling back to the decoded length when absent.
func listWithTotal[T any](ctx context.Context, client *rest.Client, path string) ([]T, int, error) {
	env, err := client.Get(ctx, path, nil)
	if err != nil {
		return nil, 0, err
	}

	items, err := rest.DecodeList[T](env)
	if err != nil {
		return nil, 0, err
	}

	total := env.Total
	if total == 0 {
		total = len(items)
	}
	return items, total, nil
}

// notFoundAs converts a backend 404 into the given sentinel, leaving other
// errors untouched.
func notFoundAs(err, sentinel error) error {
	if err == nil {
		return nil
	}
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", sentinel, apiErr.Message)
	}
	return err
}
