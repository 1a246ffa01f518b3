package controller

import (
	"context"
	"net/url"
	"strings"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/internal/service"
)

type memoryStudentService struct {
	students    []dto.Student
	nextID      uint
	listErr     error
	createErr   error
	listCalls   int
	createCalls int
	deleted     []uint
	deactivated []uint
}

func newMemoryStudentService(students ...dto.Student) *memoryStudentService {
	m := &memoryStudentService{nextID: 1}
	for _, st := range students {
		if st.ID == 0 {
			st.ID = m.nextID
		}
		if st.ID >= m.nextID {
			m.nextID = st.ID + 1
		}
		m.students = append(m.students, st)
	}
	return m
}

func (m *memoryStudentService) Create(ctx context.Context, student dto.Student) (dto.Student, error) {
	m.createCalls++
	if m.createErr != nil {
		return dto.Student{}, m.createErr
	}
	student.ID = m.nextID
	m.nextID++
	student.IsActive = true
	m.students = append(m.students, student)
	return student, nil
}

func (m *memoryStudentService) Update(ctx context.Context, id uint, student dto.Student) (dto.Student, error) {
	for i, st := range m.students {
		if st.ID == id {
			student.ID = id
			m.students[i] = student
			return student, nil
		}
	}
	return dto.Student{}, service.ErrStudentNotFound
}

func (m *memoryStudentService) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	kept := m.students[:0]
	for _, st := range m.students {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	m.students = kept
	return nil
}

func (m *memoryStudentService) List(ctx context.Context) ([]dto.Student, int, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	out := make([]dto.Student, len(m.students))
	copy(out, m.students)
	return out, len(out), nil
}

func (m *memoryStudentService) GetByID(ctx context.Context, id uint) (dto.Student, error) {
	for _, st := range m.students {
		if st.ID == id {
			return st, nil
		}
	}
	return dto.Student{}, service.ErrStudentNotFound
}

func (m *memoryStudentService) GetByCode(ctx context.Context, code string) (dto.Student, error) {
	for _, st := range m.students {
		if st.Code == code {
			return st, nil
		}
	}
	return dto.Student{}, service.ErrStudentNotFound
}

func (m *memoryStudentService) Search(ctx context.Context, params url.Values) ([]dto.Student, error) {
	out := make([]dto.Student, len(m.students))
	copy(out, m.students)
	return out, nil
}

func (m *memoryStudentService) ListBySemester(ctx context.Context, semester int) ([]dto.Student, error) {
	var out []dto.Student
	for _, st := range m.students {
		if st.CurrentSemester == semester {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *memoryStudentService) ListByBranch(ctx context.Context, branchCode string) ([]dto.Student, error) {
	var out []dto.Student
	for _, st := range m.students {
		if strings.EqualFold(st.BranchCode, branchCode) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *memoryStudentService) ListActive(ctx context.Context) ([]dto.Student, int, error) {
	var out []dto.Student
	for _, st := range m.students {
		if st.IsActive {
			out = append(out, st)
		}
	}
	return out, len(out), nil
}

func (m *memoryStudentService) Performance(ctx context.Context, semester int, branchCode string) ([]dto.StudentPerformance, error) {
	return nil, nil
}

func (m *memoryStudentService) Deactivate(ctx context.Context, id uint) error {
	m.deactivated = append(m.deactivated, id)
	for i := range m.students {
		if m.students[i].ID == id {
			m.students[i].IsActive = !m.students[i].IsActive
			return nil
		}
	}
	return service.ErrStudentNotFound
}

type memoryCourseService struct {
	courses     []dto.Course
	nextID      uint
	createCalls int
	deleted     []uint
	deactivated []uint
}

func newMemoryCourseService(courses ...dto.Course) *memoryCourseService {
	m := &memoryCourseService{nextID: 1}
	for _, course := range courses {
		if course.ID == 0 {
			course.ID = m.nextID
		}
		if course.ID >= m.nextID {
			m.nextID = course.ID + 1
		}
		m.courses = append(m.courses, course)
	}
	return m
}

func (m *memoryCourseService) Create(ctx context.Context, course dto.Course) (dto.Course, error) {
	m.createCalls++
	course.ID = m.nextID
	m.nextID++
	course.IsActive = true
	m.courses = append(m.courses, course)
	return course, nil
}

func (m *memoryCourseService) Update(ctx context.Context, id uint, course dto.Course) (dto.Course, error) {
	for i, existing := range m.courses {
		if existing.ID == id {
			course.ID = id
			m.courses[i] = course
			return course, nil
		}
	}
	return dto.Course{}, service.ErrCourseNotFound
}

func (m *memoryCourseService) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	kept := m.courses[:0]
	for _, course := range m.courses {
		if course.ID != id {
			kept = append(kept, course)
		}
	}
	m.courses = kept
	return nil
}

func (m *memoryCourseService) List(ctx context.Context) ([]dto.Course, int, error) {
	out := make([]dto.Course, len(m.courses))
	copy(out, m.courses)
	return out, len(out), nil
}

func (m *memoryCourseService) GetByID(ctx context.Context, id uint) (dto.Course, error) {
	for _, course := range m.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return dto.Course{}, service.ErrCourseNotFound
}

func (m *memoryCourseService) GetByCode(ctx context.Context, code string) (dto.Course, error) {
	for _, course := range m.courses {
		if course.Code == code {
			return course, nil
		}
	}
	return dto.Course{}, service.ErrCourseNotFound
}

func (m *memoryCourseService) ListActive(ctx context.Context) ([]dto.Course, int, error) {
	var out []dto.Course
	for _, course := range m.courses {
		if course.IsActive {
			out = append(out, course)
		}
	}
	return out, len(out), nil
}

func (m *memoryCourseService) ListByDepartment(ctx context.Context, department string) ([]dto.Course, error) {
	var out []dto.Course
	for _, course := range m.courses {
		if strings.EqualFold(course.Department, department) {
			out = append(out, course)
		}
	}
	return out, nil
}

func (m *memoryCourseService) Search(ctx context.Context, name string) ([]dto.Course, error) {
	var out []dto.Course
	for _, course := range m.courses {
		if strings.Contains(strings.ToLower(course.Name), strings.ToLower(name)) {
			out = append(out, course)
		}
	}
	return out, nil
}

func (m *memoryCourseService) Deactivate(ctx context.Context, id uint) error {
	m.deactivated = append(m.deactivated, id)
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses[i].IsActive = !m.courses[i].IsActive
			return nil
		}
	}
	return service.ErrCourseNotFound
}

type memoryTeacherService struct {
	teachers    []dto.Teacher
	nextID      uint
	createCalls int
	deleted     []uint
	deactivated []uint
}

func newMemoryTeacherService(teachers ...dto.Teacher) *memoryTeacherService {
	m := &memoryTeacherService{nextID: 1}
	for _, teacher := range teachers {
		if teacher.ID == 0 {
			teacher.ID = m.nextID
		}
		if teacher.ID >= m.nextID {
			m.nextID = teacher.ID + 1
		}
		m.teachers = append(m.teachers, teacher)
	}
	return m
}

func (m *memoryTeacherService) Create(ctx context.Context, teacher dto.Teacher) (dto.Teacher, error) {
	m.createCalls++
	teacher.ID = m.nextID
	m.nextID++
	teacher.IsActive = true
	m.teachers = append(m.teachers, teacher)
	return teacher, nil
}

func (m *memoryTeacherService) Update(ctx context.Context, id uint, teacher dto.Teacher) (dto.Teacher, error) {
	for i, existing := range m.teachers {
		if existing.ID == id {
			teacher.ID = id
			m.teachers[i] = teacher
			return teacher, nil
		}
	}
	return dto.Teacher{}, service.ErrTeacherNotFound
}

func (m *memoryTeacherService) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	kept := m.teachers[:0]
	for _, teacher := range m.teachers {
		if teacher.ID != id {
			kept = append(kept, teacher)
		}
	}
	m.teachers = kept
	return nil
}

func (m *memoryTeacherService) List(ctx context.Context) ([]dto.Teacher, int, error) {
	out := make([]dto.Teacher, len(m.teachers))
	copy(out, m.teachers)
	return out, len(out), nil
}

func (m *memoryTeacherService) GetByID(ctx context.Context, id uint) (dto.Teacher, error) {
	for _, teacher := range m.teachers {
		if teacher.ID == id {
			return teacher, nil
		}
	}
	return dto.Teacher{}, service.ErrTeacherNotFound
}

func (m *memoryTeacherService) ListActive(ctx context.Context) ([]dto.Teacher, int, error) {
	var out []dto.Teacher
	for _, teacher := range m.teachers {
		if teacher.IsActive {
			out = append(out, teacher)
		}
	}
	return out, len(out), nil
}

func (m *memoryTeacherService) ListByDepartment(ctx context.Context, department string) ([]dto.Teacher, error) {
	var out []dto.Teacher
	for _, teacher := range m.teachers {
		if strings.EqualFold(teacher.Department, department) {
			out = append(out, teacher)
		}
	}
	return out, nil
}

func (m *memoryTeacherService) Search(ctx context.Context, name string) ([]dto.Teacher, error) {
	var out []dto.Teacher
	for _, teacher := range m.teachers {
		if strings.Contains(strings.ToLower(teacher.Name), strings.ToLower(name)) {
			out = append(out, teacher)
		}
	}
	return out, nil
}

func (m *memoryTeacherService) Deactivate(ctx context.Context, id uint) error {
	m.deactivated = append(m.deactivated, id)
	for i := range m.teachers {
		if m.teachers[i].ID == id {
			m.teachers[i].IsActive = !m.teachers[i].IsActive
			return nil
		}
	}
	return service.ErrTeacherNotFound
}

type memoryGradeService struct {
	grades      []dto.Grade
	nextID      uint
	createCalls int
	deleted     []uint
	average     string
	gpa         string
}

func newMemoryGradeService(grades ...dto.Grade) *memoryGradeService {
	m := &memoryGradeService{nextID: 1, average: "0.00", gpa: "0.00"}
	for _, grade := range grades {
		if grade.ID == 0 {
			grade.ID = m.nextID
		}
		if grade.ID >= m.nextID {
			m.nextID = grade.ID + 1
		}
		m.grades = append(m.grades, grade)
	}
	return m
}

func (m *memoryGradeService) Create(ctx context.Context, grade dto.Grade) (dto.Grade, error) {
	m.createCalls++
	grade.ID = m.nextID
	m.nextID++
	m.grades = append(m.grades, grade)
	return grade, nil
}

func (m *memoryGradeService) Update(ctx context.Context, id uint, grade dto.Grade) (dto.Grade, error) {
	for i, existing := range m.grades {
		if existing.ID == id {
			grade.ID = id
			m.grades[i] = grade
			return grade, nil
		}
	}
	return dto.Grade{}, service.ErrGradeNotFound
}

func (m *memoryGradeService) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	kept := m.grades[:0]
	for _, grade := range m.grades {
		if grade.ID != id {
			kept = append(kept, grade)
		}
	}
	m.grades = kept
	return nil
}

func (m *memoryGradeService) GetByID(ctx context.Context, id uint) (dto.Grade, error) {
	for _, grade := range m.grades {
		if grade.ID == id {
			return grade, nil
		}
	}
	return dto.Grade{}, service.ErrGradeNotFound
}

func (m *memoryGradeService) ListByStudent(ctx context.Context, studentCode string) ([]dto.Grade, error) {
	var out []dto.Grade
	for _, grade := range m.grades {
		if grade.StudentCode == studentCode {
			out = append(out, grade)
		}
	}
	return out, nil
}

func (m *memoryGradeService) ListByStudentSemester(ctx context.Context, studentCode string, semester int) ([]dto.Grade, error) {
	var out []dto.Grade
	for _, grade := range m.grades {
		if grade.StudentCode == studentCode && grade.Semester == semester {
			out = append(out, grade)
		}
	}
	return out, nil
}

func (m *memoryGradeService) ListByCourse(ctx context.Context, courseCode string) ([]dto.Grade, error) {
	var out []dto.Grade
	for _, grade := range m.grades {
		if grade.CourseCode == courseCode {
			out = append(out, grade)
		}
	}
	return out, nil
}

func (m *memoryGradeService) ListByCourseSemester(ctx context.Context, courseCode string, semester int) ([]dto.Grade, error) {
	var out []dto.Grade
	for _, grade := range m.grades {
		if grade.CourseCode == courseCode && grade.Semester == semester {
			out = append(out, grade)
		}
	}
	return out, nil
}

func (m *memoryGradeService) StudentAverage(ctx context.Context, studentCode string) (string, error) {
	return m.average, nil
}

func (m *memoryGradeService) StudentGPA(ctx context.Context, studentCode string, semester int) (string, error) {
	return m.gpa, nil
}

type memoryAttendanceService struct {
	records     []dto.Attendance
	nextID      uint
	createCalls int
	deleted     []uint
	percentage  string
}

func newMemoryAttendanceService(records ...dto.Attendance) *memoryAttendanceService {
	m := &memoryAttendanceService{nextID: 1, percentage: "0.0"}
	for _, record := range records {
		if record.ID == 0 {
			record.ID = m.nextID
		}
		if record.ID >= m.nextID {
			m.nextID = record.ID + 1
		}
		m.records = append(m.records, record)
	}
	return m
}

func (m *memoryAttendanceService) Create(ctx context.Context, record dto.Attendance) (dto.Attendance, error) {
	m.createCalls++
	record.ID = m.nextID
	m.nextID++
	m.records = append(m.records, record)
	return record, nil
}

func (m *memoryAttendanceService) Update(ctx context.Context, id uint, record dto.Attendance) (dto.Attendance, error) {
	for i, existing := range m.records {
		if existing.ID == id {
			record.ID = id
			m.records[i] = record
			return record, nil
		}
	}
	return dto.Attendance{}, service.ErrAttendanceNotFound
}

func (m *memoryAttendanceService) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	kept := m.records[:0]
	for _, record := range m.records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	m.records = kept
	return nil
}

func (m *memoryAttendanceService) GetByID(ctx context.Context, id uint) (dto.Attendance, error) {
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return dto.Attendance{}, service.ErrAttendanceNotFound
}

func (m *memoryAttendanceService) ListByStudent(ctx context.Context, studentCode string) ([]dto.Attendance, error) {
	var out []dto.Attendance
	for _, record := range m.records {
		if record.StudentCode == studentCode {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memoryAttendanceService) ListByStudentSemester(ctx context.Context, studentCode string, semester int) ([]dto.Attendance, error) {
	var out []dto.Attendance
	for _, record := range m.records {
		if record.StudentCode == studentCode && record.Semester == semester {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memoryAttendanceService) ListByCourse(ctx context.Context, courseCode string) ([]dto.Attendance, error) {
	var out []dto.Attendance
	for _, record := range m.records {
		if record.CourseCode == courseCode {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memoryAttendanceService) ListBySemester(ctx context.Context, semester int) ([]dto.Attendance, error) {
	var out []dto.Attendance
	for _, record := range m.records {
		if record.Semester == semester {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memoryAttendanceService) ListByDateRange(ctx context.Context, startDate, endDate string, semester int) ([]dto.Attendance, error) {
	var out []dto.Attendance
	for _, record := range m.records {
		if record.AttendanceDate < startDate || record.AttendanceDate > endDate {
			continue
		}
		if semester > 0 && record.Semester != semester {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (m *memoryAttendanceService) Percentage(ctx context.Context, studentCode string, semester int) (string, error) {
	return m.percentage, nil
}
