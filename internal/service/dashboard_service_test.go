package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

type countStudentService struct {
	StudentService
	total   int
	active  int
	listErr error
}

func (s countStudentService) List(ctx context.Context) ([]dto.Student, int, error) {
	return nil, s.total, s.listErr
}

func (s countStudentService) ListActive(ctx context.Context) ([]dto.Student, int, error) {
	return nil, s.active, nil
}

type countCourseService struct {
	CourseService
	total  int
	active int
}

func (s countCourseService) List(ctx context.Context) ([]dto.Course, int, error) {
	return nil, s.total, nil
}

func (s countCourseService) ListActive(ctx context.Context) ([]dto.Course, int, error) {
	return nil, s.active, nil
}

type countTeacherService struct {
	TeacherService
	total  int
	active int
}

func (s countTeacherService) List(ctx context.Context) ([]dto.Teacher, int, error) {
	return nil, s.total, nil
}

func (s countTeacherService) ListActive(ctx context.Context) ([]dto.Teacher, int, error) {
	return nil, s.active, nil
}

func TestDashboardSnapshotAggregatesCounts(t *testing.T) {
	svc := NewDashboardService(
		countStudentService{total: 120, active: 90},
		countCourseService{total: 40, active: 30},
		countTeacherService{total: 12, active: 10},
		nil, 0, zerolog.Nop(),
	)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Equal(t, 120, snapshot.TotalStudents)
	require.Equal(t, 90, snapshot.ActiveStudents)
	require.Equal(t, 30, snapshot.InactiveStudents)
	require.Equal(t, 40, snapshot.TotalCourses)
	require.Equal(t, 10, snapshot.InactiveCourses)
	require.Equal(t, 12, snapshot.TotalTeachers)
	require.Equal(t, 2, snapshot.InactiveTeachers)

	require.Equal(t, 75.0, snapshot.EnrollmentRate)
	require.Equal(t, 75.0, snapshot.ActiveCourseRate)
	require.Equal(t, 10.0, snapshot.StudentTeacherRatio)
	require.False(t, snapshot.CacheHit)
}

func TestDashboardSnapshotZeroTotalsYieldZeroRates(t *testing.T) {
	svc := NewDashboardService(
		countStudentService{},
		countCourseService{},
		countTeacherService{},
		nil, 0, zerolog.Nop(),
	)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Zero(t, snapshot.EnrollmentRate)
	require.Zero(t, snapshot.ActiveCourseRate)
	require.Zero(t, snapshot.StudentTeacherRatio)
}

func TestDashboardSnapshotPropagatesFirstError(t *testing.T) {
	listErr := errors.New("backend unavailable")
	svc := NewDashboardService(
		countStudentService{listErr: listErr},
		countCourseService{total: 40, active: 30},
		countTeacherService{total: 12, active: 10},
		nil, 0, zerolog.Nop(),
	)

	_, err := svc.Snapshot(context.Background())
	require.ErrorIs(t, err, listErr)
}

func TestDashboardSnapshotUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = cache.Close() })

	svc := NewDashboardService(
		countStudentService{total: 50, active: 40},
		countCourseService{total: 20, active: 15},
		countTeacherService{total: 5, active: 5},
		cache, time.Minute, zerolog.Nop(),
	)

	first, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.False(t, first.CacheHit)

	second, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.True(t, second.CacheHit)
	require.Equal(t, first.TotalStudents, second.TotalStudents)
	require.Equal(t, first.EnrollmentRate, second.EnrollmentRate)

	mr.FastForward(2 * time.Minute)
	third, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.False(t, third.CacheHit)
}
