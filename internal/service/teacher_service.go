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

// ErrTeacherNotFound indicates the backend had no teacher for the id.
var ErrTeacherNotFound = errors.New("teacher not found")

// TeacherService maps teacher operations onto backend requests.
type TeacherService interface {
	Create(ctx context.Context, teacher dto.Teacher) (dto.Teacher, error)
	Update(ctx context.Context, id uint, teacher dto.Teacher) (dto.Teacher, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]dto.Teacher, int, error)
	GetByID(ctx context.Context, id uint) (dto.Teacher, error)
	ListActive(ctx context.Context) ([]dto.Teacher, int, error)
	ListByDepartment(ctx context.Context, department string) ([]dto.Teacher, error)
	Search(ctx context.Context, name string) ([]dto.Teacher, error)
	Deactivate(ctx context.Context, id uint) error
}

type teacherService struct {
	client *rest.Client
	logger zerolog.Logger
}

// NewTeacherService constructs the teacher service module.
func NewTeacherService(client *rest.Client, logger zerolog.Logger) TeacherService {
	return &teacherService{
		client: client,
		logger: logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) Create(ctx context.Context, teacher dto.Teacher) (dto.Teacher, error) {
	env, err := s.client.Post(ctx, "/teacher", teacher)
	if err != nil {
		return dto.Teacher{}, err
	}
	return rest.DecodeOne[dto.Teacher](env)
}

func (s *teacherService) Update(ctx context.Context, id uint, teacher dto.Teacher) (dto.Teacher, error) {
	env, err := s.client.Put(ctx, fmt.Sprintf("/teacher/%d", id), teacher)
	if err != nil {
		return dto.Teacher{}, notFoundAs(err, ErrTeacherNotFound)
	}
	return rest.DecodeOne[dto.Teacher](env)
}

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("/teacher/%d", id))
	return notFoundAs(err, ErrTeacherNotFound)
}

func (s *teacherService) List(ctx context.Context) ([]dto.Teacher, int, error) {
	return listWithTotal[dto.Teacher](ctx, s.client, "/teacher")
}

func (s *teacherService) GetByID(ctx context.Context, id uint) (dto.Teacher, error) {
	env, err := s.client.Get(ctx, fmt.Sprintf("/teacher/%d", id), nil)
	if err != nil {
		return dto.Teacher{}, notFoundAs(err, ErrTeacherNotFound)
	}
	return rest.DecodeOne[dto.Teacher](env)
}

func (s *teacherService) ListActive(ctx context.Context) ([]dto.Teacher, int, error) {
	return listWithTotal[dto.Teacher](ctx, s.client, "/teacher/active/list")
}

func (s *teacherService) ListByDepartment(ctx context.Context, department string) ([]dto.Teacher, error) {
	env, err := s.client.Get(ctx, "/teacher/department/"+url.PathEscape(department), nil)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Teacher](env)
}

func (s *teacherService) Search(ctx context.Context, name string) ([]dto.Teacher, error) {
	params := url.Values{}
	params.Set("name", name)

	env, err := s.client.Get(ctx, "/teacher/search", params)
	if err != nil {
		return nil, err
	}
	return rest.DecodeList[dto.Teacher](env)
}

func (s *teacherService) Deactivate(ctx context.Context, id uint) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("/teacher/%d/deactivate", id), nil)
	return notFoundAs(err, ErrTeacherNotFound)
}
