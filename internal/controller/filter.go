package controller

import (
	"strings"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

// ActiveFilter is the tri-state status criterion of a list view.
type ActiveFilter int

const (
	FilterAll ActiveFilter = iota
	FilterActive
	FilterInactive
)

// StudentCriteria is the client-side filter state of the student list. A zero
// value matches everything.
type StudentCriteria struct {
	Search   string
	Semester int
	Branch   string
	Status   ActiveFilter
}

// CourseCriteria is the client-side filter state of the course list.
type CourseCriteria struct {
	Search     string
	Department string
	Status     ActiveFilter
}

// TeacherCriteria is the client-side filter state of the teacher list.
type TeacherCriteria struct {
	Search     string
	Department string
	Status     ActiveFilter
}

// FilterStudents derives the filtered view: a case-insensitive substring
// match over name, email and code (the mobile number matches the raw term),
// combined with exact semester, branch substring and status criteria.
func FilterStudents(students []dto.Student, criteria StudentCriteria) []dto.Student {
	filtered := make([]dto.Student, 0, len(students))
	term := strings.ToLower(strings.TrimSpace(criteria.Search))
	branch := strings.ToLower(strings.TrimSpace(criteria.Branch))

	for _, student := range students {
		if term != "" {
			matched := strings.Contains(strings.ToLower(student.FirstName), term) ||
				strings.Contains(strings.ToLower(student.LastName), term) ||
				strings.Contains(strings.ToLower(student.Email), term) ||
				strings.Contains(student.Mobile, criteria.Search) ||
				strings.Contains(strings.ToLower(student.Code), term)
			if !matched {
				continue
			}
		}
		if criteria.Semester > 0 && student.CurrentSemester != criteria.Semester {
			continue
		}
		if branch != "" && !strings.Contains(strings.ToLower(student.BranchCode), branch) {
			continue
		}
		if !matchesActive(criteria.Status, student.IsActive) {
			continue
		}
		filtered = append(filtered, student)
	}
	return filtered
}

// FilterCourses derives the filtered view over name, code and department,
// with an exact department criterion and the status tri-state.
func FilterCourses(courses []dto.Course, criteria CourseCriteria) []dto.Course {
	filtered := make([]dto.Course, 0, len(courses))
	term := strings.ToLower(strings.TrimSpace(criteria.Search))
	department := strings.TrimSpace(criteria.Department)

	for _, course := range courses {
		if term != "" {
			matched := strings.Contains(strings.ToLower(course.Name), term) ||
				strings.Contains(strings.ToLower(course.Code), term) ||
				strings.Contains(strings.ToLower(course.Department), term)
			if !matched {
				continue
			}
		}
		if department != "" && !strings.EqualFold(course.Department, department) {
			continue
		}
		if !matchesActive(criteria.Status, course.IsActive) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

// FilterTeachers derives the filtered view over name and email (the phone
// number matches the raw term), with an exact department criterion and the
// status tri-state.
func FilterTeachers(teachers []dto.Teacher, criteria TeacherCriteria) []dto.Teacher {
	filtered := make([]dto.Teacher, 0, len(teachers))
	term := strings.ToLower(strings.TrimSpace(criteria.Search))
	department := strings.TrimSpace(criteria.Department)

	for _, teacher := range teachers {
		if term != "" {
			matched := strings.Contains(strings.ToLower(teacher.Name), term) ||
				strings.Contains(strings.ToLower(teacher.Email), term) ||
				strings.Contains(teacher.Phone, criteria.Search)
			if !matched {
				continue
			}
		}
		if department != "" && !strings.EqualFold(teacher.Department, department) {
			continue
		}
		if !matchesActive(criteria.Status, teacher.IsActive) {
			continue
		}
		filtered = append(filtered, teacher)
	}
	return filtered
}

func matchesActive(filter ActiveFilter, isActive bool) bool {
	switch filter {
	case FilterActive:
		return isActive
	case FilterInactive:
		return !isActive
	default:
		return true
	}
}

// Departments returns the unique department values of the loaded collection,
// in first-seen order, for the filter dropdown.
func Departments(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
