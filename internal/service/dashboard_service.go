package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

// DashboardService produces the aggregated entity counts and derived ratios
// for the summary view.
type DashboardService interface {
	Snapshot(ctx context.Context) (dto.DashboardSnapshot, error)
}

type dashboardService struct {
	students StudentService
	courses  CourseService
	teachers TeacherService
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewDashboardService builds the dashboard aggregator. The cache client may
// be nil, which disables snapshot caching without changing behavior.
func NewDashboardService(students StudentService, courses CourseService, teachers TeacherService, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		students: students,
		courses:  courses,
		teachers: teachers,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
	}
}

type countResult struct {
	name  string
	total int
	err   error
}

func (s *dashboardService) Snapshot(ctx context.Context) (dto.DashboardSnapshot, error) {
	const cacheKey = "dashboard:snapshot"

	tracer := otel.Tracer("github.com/noah-isme/campus-admin-go/internal/service/dashboard")
	ctx, span := tracer.Start(ctx, "dashboard.aggregate")
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var snapshot dto.DashboardSnapshot
			if unmarshalErr := json.Unmarshal([]byte(cached), &snapshot); unmarshalErr == nil {
				snapshot.CacheHit = true
				span.SetAttributes(attribute.Bool("dashboard.cache_hit", true))
				return snapshot, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	counts := map[string]func(context.Context) (int, error){
		"students":        func(ctx context.Context) (int, error) { _, total, err := s.students.List(ctx); return total, err },
		"active_students": func(ctx context.Context) (int, error) { _, total, err := s.students.ListActive(ctx); return total, err },
		"courses":         func(ctx context.Context) (int, error) { _, total, err := s.courses.List(ctx); return total, err },
		"active_courses":  func(ctx context.Context) (int, error) { _, total, err := s.courses.ListActive(ctx); return total, err },
		"teachers":        func(ctx context.Context) (int, error) { _, total, err := s.teachers.List(ctx); return total, err },
		"active_teachers": func(ctx context.Context) (int, error) { _, total, err := s.teachers.ListActive(ctx); return total, err },
	}

	results := make(chan countResult, len(counts))
	for name, fetch := range counts {
		go func(name string, fetch func(context.Context) (int, error)) {
			total, err := fetch(ctx)
			results <- countResult{name: name, total: total, err: err}
		}(name, fetch)
	}

	totals := make(map[string]int, len(counts))
	var firstErr error
	for range counts {
		result := <-results
		if result.err != nil && firstErr == nil {
			firstErr = result.err
		}
		totals[result.name] = result.total
	}
	if firstErr != nil {
		return dto.DashboardSnapshot{}, firstErr
	}

	snapshot := dto.DashboardSnapshot{
		TotalStudents:    totals["students"],
		ActiveStudents:   totals["active_students"],
		InactiveStudents: totals["students"] - totals["active_students"],
		TotalCourses:     totals["courses"],
		ActiveCourses:    totals["active_courses"],
		InactiveCourses:  totals["courses"] - totals["active_courses"],
		TotalTeachers:    totals["teachers"],
		ActiveTeachers:   totals["active_teachers"],
		InactiveTeachers: totals["teachers"] - totals["active_teachers"],
	}
	snapshot.EnrollmentRate = percentage(snapshot.ActiveStudents, snapshot.TotalStudents)
	snapshot.ActiveCourseRate = percentage(snapshot.ActiveCourses, snapshot.TotalCourses)
	snapshot.StudentTeacherRatio = ratio(snapshot.TotalStudents, snapshot.TotalTeachers)

	span.SetAttributes(
		attribute.Int("dashboard.total_students", snapshot.TotalStudents),
		attribute.Int("dashboard.total_courses", snapshot.TotalCourses),
		attribute.Int("dashboard.total_teachers", snapshot.TotalTeachers),
	)

	if s.cache != nil {
		if payload, err := json.Marshal(snapshot); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return snapshot, nil
}

// percentage returns part/total as a percentage rounded to one decimal, with
// a zero total mapping to 0 rather than NaN.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*10) / 10
}
