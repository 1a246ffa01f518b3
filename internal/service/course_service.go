package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/pkg/rest"
)

// ErrCourseNotFound indicates the backend had no course for the id or code.
var ErrCourseNotFound = errors.New("course not found")

// CourseService maps course operations onto backend requests.
type CourseService interface {
	Create(ctx context.Context, course dto.Course) (dto.Course, error)
	Update(ctx context.Context, id uint, course dto.Course) (dto.Course, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]dto.Course, int, error)
	GetByID(ctx context.Context, id uint) (dto.Course, error)
	GetByCode(ctx context.Context, code string) (dto.Course, error)
	ListActive(ctx context.Context) ([]dto.Course, int, error)
	ListByDepartment(ctx context.Context, department string) ([]dto.Course, error)
	Search(ctx context.Context, name string) ([]dto.Course, error)
	Deactivate(ctx context.Context, id uint) error
}

type courseService struct {
	client *rest.Client
	logger zerolog.Logger
}

// NewCourseService constructs the course service module.
func NewCourseService(client *rest.Client, logger zerolog.Logger) CourseService {
	return &courseService{
		client: client,
		logger: logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) Create(ctx context.Context, course dto.Course) (dto.Course, error) {
	env, err := s.client.Post(ctx, "/course", course)
	if err != nil {
		return dto.Course{}, err
	}
	return rest.DecodeOne[dto.Course](env)
}

func (s *courseService) Update(ctx context.Context, id uint, course dto.Course) (dto.Course, error) {
	env, err := s.client.Put(ctx, fmt.Sprintf("/course/%d", id), course)
	if err != nil {
		return dto.Course{}, notFoundAs(err, ErrCourseNotFound)
	}
	return rest.DecodeOne[dto.Course](env)
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/course/%d", id))
	return notFoundAs(err, ErrCourseNotFound)
}

func (s *courseService) List(ctx context.Context) ([]dto.Course, int, error) {
	return listWithTotal[dto.Course](ctx, s.client, "/course")
}

func (s *courseService) GetByID(ctx context.Context, id uint) (dto.Course, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/course/%d", id), nil)
	if err != nil {
		return dto.Course{}, notFoundAs(err, ErrCourseNotFound)
	}
	return rest.DecodeOne[dto.Course](env)
}

func (s *courseService) GetByCode(ctx context.Context, code string) (dto.Course, error) {
	env, err := s.client.Get(ctx, "/course/code/"+url.PathEscape(code), nil)
	if err != nil {
		return dto.Course{}, notFoundAs(err, ErrCourseNotFound)
	}
	return rest.DecodeOne[dto.Course](env)
}

func (s *courseService) ListActive(ctx context.Context) ([]dto.Course, int, error) {
	return listWithTotal[dto.Course](ctx, s.client, "/course/active/list")
}

func (s *courseService) ListByDepartment(ctx context.Context, department string) ([]dto.Course, error) {
	env, err := s.client.Get(ctx, "/course/department/"+url.PathEscape(department), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Course](env)
}

func (s *courseService) Search(ctx context.Context, name string) ([]dto.Course, error) {
	params := url.Values{}
	params.Set("name", name)

	env, err := s.client.Get(ctx, "/course/search", params)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Course](env)
}

func (s *courseService) Deactivate(ctx context.Context, id uint) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/course/%d/deactivate", id), nil)
	return notFoundAs(err, ErrCourseNotFound)
}
