package apitest

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

func (s *Server) register(api fiber.Router) {
	student := api.Group("/student")
	student.Post("/", s.createStudent)
	student.Get("/", s.listStudents)
	student.Get("/active", s.listActiveStudents)
	student.Get("/search", s.searchStudents)
	student.Get("/performance", s.studentPerformance)
	student.Get("/code/:code", s.getStudentByCode)
	student.Get("/semester/:semester", s.listStudentsBySemester)
	student.Get("/branch/:branch", s.listStudentsByBranch)
	student.Get("/:id", s.getStudent)
	student.Put("/:id/deactivate", s.deactivateStudent)
	student.Put("/:id", s.updateStudent)
	student.Delete("/:id", s.deleteStudent)

	course := api.Group("/course")
	course.Post("/", s.createCourse)
	course.Get("/", s.listCourses)
	course.Get("/active/list", s.listActiveCourses)
	course.Get("/search", s.searchCourses)
	course.Get("/code/:code", s.getCourseByCode)
	course.Get("/department/:department", s.listCoursesByDepartment)
	course.Get("/:id", s.getCourse)
	course.Put("/:id/deactivate", s.deactivateCourse)
	course.Put("/:id", s.updateCourse)
	course.Delete("/:id", s.deleteCourse)

	teacher := api.Group("/teacher")
	teacher.Post("/", s.createTeacher)
	teacher.Get("/", s.listTeachers)
	teacher.Get("/active/list", s.listActiveTeachers)
	teacher.Get("/search", s.searchTeachers)
	teacher.Get("/department/:department", s.listTeachersByDepartment)
	teacher.Get("/:id", s.getTeacher)
	teacher.Put("/:id/deactivate", s.deactivateTeacher)
	teacher.Put("/:id", s.updateTeacher)
	teacher.Delete("/:id", s.deleteTeacher)

	grade := api.Group("/grade")
	grade.Post("/", s.createGrade)
	grade.Get("/student/:code/average", s.studentAverage)
	grade.Get("/student/:code/gpa", s.studentGPA)
	grade.Get("/student/:code/semester/:semester", s.listGradesByStudentSemester)
	grade.Get("/student/:code", s.listGradesByStudent)
	grade.Get("/course/:code/semester/:semester", s.listGradesByCourseSemester)
	grade.Get("/course/:code", s.listGradesByCourse)
	grade.Get("/:id", s.getGrade)
	grade.Put("/:id", s.updateGrade)
	grade.Delete("/:id", s.deleteGrade)

	attendance := api.Group("/attendance")
	attendance.Post("/", s.createAttendance)
	attendance.Get("/date-range", s.listAttendanceByDateRange)
	attendance.Get("/student/:code/percentage", s.attendancePercentage)
	attendance.Get("/student/:code/semester/:semester", s.listAttendanceByStudentSemester)
	attendance.Get("/student/:code", s.listAttendanceByStudent)
	attendance.Get("/course/:code", s.listAttendanceByCourse)
	attendance.Get("/semester/:semester", s.listAttendanceBySemester)
	attendance.Get("/:id", s.getAttendance)
	attendance.Put("/:id", s.updateAttendance)
	attendance.Delete("/:id", s.deleteAttendance)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// --- students ---

func (s *Server) createStudent(c *fiber.Ctx) error {
	var student dto.Student
	if err := c.BodyParser(&student); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	student.ID = 0
	if student.Code == "" {
		student.Code = generatedCode("STU")
	}
	student.IsActive = true
	student.CreatedAt = timestamp()
	student.UpdatedAt = student.CreatedAt
	if err := s.db.Create(&student).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return sendData(c, fiber.StatusCreated, student, "Student created successfully")
}

func (s *Server) listStudents(c *fiber.Ctx) error {
	var students []dto.Student
	if err := s.db.Find(&students).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return sendList(c, students, len(students))
}

func (s *Server) listActiveStudents(c *fiber.Ctx) error {
	var students []dto.Student
	if err := s.db.Where("is_active = ?", true).Find(&students).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return sendList(c, students, len(students))
}

func (s *Server) searchStudents(c *fiber.Ctx) error {
	var students []dto.Student
	if err := s.db.Find(&students).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	name := c.Query("name")
	branch := c.Query("branchCode")
	semester := c.QueryInt("semester")
	matched := make([]dto.Student, 0, len(students))
	for _, st := range students {
		if name != "" && !containsFold(st.FirstName+" "+st.LastName, name) {
			continue
		}
		if branch != "" && !strings.EqualFold(st.BranchCode, branch) {
			continue
		}
		if semester > 0 && st.CurrentSemester != semester {
			continue
		}
		matched = append(matched, st)
	}
	return sendList(c, matched, len(matched))
}

func (s *Server) studentPerformance(c *fiber.Ctx) error {
	semester := c.QueryInt("semester")
	branch := c.Query("branchCode")
	var students []dto.Student
	query := s.db
	if semester > 0 {
		query = query.Where("current_semester = ?", semester)
	}
	if branch != "" {
		query = query.Where("branch_code = ?", branch)
	}
	if err := query.Find(&students).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch performance")
	}
	rows := make([]dto.StudentPerformance, 0, len(students))
	for _, st := range students {
		var grades []dto.Grade
		s.db.Where("student_code = ?", st.Code).Find(&grades)
		var totalMarks, totalPoints float64
		for _, g := range grades {
			totalMarks += g.TotalMarks
			totalPoints += g.GradePoint
		}
		row := dto.StudentPerformance{StudentID: st.ID, Name: st.FirstName + " " + st.LastName}
		if len(grades) > 0 {
			row.AverageGrade = totalMarks / float64(len(grades))
			row.GPA = totalPoints / float64(len(grades))
		}
		rows = append(rows, row)
	}
	return sendList(c, rows, len(rows))
}

func (s *Server) getStudentByCode(c *fiber.Ctx) error {
	var student dto.Student
	err := s.db.Where("code = ?", c.Params("code")).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return sendData(c, fiber.StatusOK, student, "")
}

func (s *Server) listStudentsBySemester(c *fiber.Ctx) error {
	semester, err := c.ParamsInt("semester")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid semester")
	}
	var students []dto.Student
	if err := s.db.Where("current_semester = ?", semester).Find(&students).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return sendList(c, students, len(students))
}

func (s *Server) listStudentsByBranch(c *fiber.Ctx) error {
	var students []dto.Student
	if err := s.db.Where("branch_code = ?", c.Params("branch")).Find(&students).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return sendList(c, students, len(students))
}

func (s *Server) getStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student dto.Student
	err = s.db.First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return sendData(c, fiber.StatusOK, student, "")
}

func (s *Server) updateStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var existing dto.Student
	if errors.Is(s.db.First(&existing, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Student not found")
	}
	var student dto.Student
	if err := c.BodyParser(&student); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	student.ID = existing.ID
	if student.Code == "" {
		student.Code = existing.Code
	}
	student.CreatedAt = existing.CreatedAt
	student.UpdatedAt = timestamp()
	if err := s.db.Save(&student).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return sendData(c, fiber.StatusOK, student, "Student updated successfully")
}

func (s *Server) deactivateStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student dto.Student
	if errors.Is(s.db.First(&student, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Student not found")
	}
	student.IsActive = !student.IsActive
	student.UpdatedAt = timestamp()
	if err := s.db.Save(&student).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return sendData(c, fiber.StatusOK, student, "Student status updated")
}

func (s *Server) deleteStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student dto.Student
	if errors.Is(s.db.First(&student, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Student not found")
	}
	if err := s.db.Delete(&dto.Student{}, id).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return sendData(c, fiber.StatusOK, nil, "Student deleted successfully")
}

// --- courses ---

func (s *Server) createCourse(c *fiber.Ctx) error {
	var course dto.Course
	if err := c.BodyParser(&course); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	course.ID = 0
	if course.Code == "" {
		course.Code = generatedCode("CRS")
	}
	course.IsActive = true
	if err := s.db.Create(&course).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return sendData(c, fiber.StatusCreated, course, "Course created successfully")
}

func (s *Server) listCourses(c *fiber.Ctx) error {
	var courses []dto.Course
	if err := s.db.Find(&courses).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return sendList(c, courses, len(courses))
}

func (s *Server) listActiveCourses(c *fiber.Ctx) error {
	var courses []dto.Course
	if err := s.db.Where("is_active = ?", true).Find(&courses).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return sendList(c, courses, len(courses))
}

func (s *Server) searchCourses(c *fiber.Ctx) error {
	name := c.Query("name")
	var courses []dto.Course
	if err := s.db.Find(&courses).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	matched := make([]dto.Course, 0, len(courses))
	for _, course := range courses {
		if name == "" || containsFold(course.Name, name) {
			matched = append(matched, course)
		}
	}
	return sendList(c, matched, len(matched))
}

func (s *Server) getCourseByCode(c *fiber.Ctx) error {
	var course dto.Course
	err := s.db.Where("code = ?", c.Params("code")).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Course not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return sendData(c, fiber.StatusOK, course, "")
}

func (s *Server) listCoursesByDepartment(c *fiber.Ctx) error {
	var courses []dto.Course
	if err := s.db.Where("department = ?", c.Params("department")).Find(&courses).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return sendList(c, courses, len(courses))
}

func (s *Server) getCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course dto.Course
	err = s.db.First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Course not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return sendData(c, fiber.StatusOK, course, "")
}

func (s *Server) updateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var existing dto.Course
	if errors.Is(s.db.First(&existing, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Course not found")
	}
	var course dto.Course
	if err := c.BodyParser(&course); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	course.ID = existing.ID
	if err := s.db.Save(&course).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return sendData(c, fiber.StatusOK, course, "Course updated successfully")
}

func (s *Server) deactivateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course dto.Course
	if errors.Is(s.db.First(&course, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Course not found")
	}
	course.IsActive = !course.IsActive
	if err := s.db.Save(&course).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return sendData(c, fiber.StatusOK, course, "Course status updated")
}

func (s *Server) deleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var course dto.Course
	if errors.Is(s.db.First(&course, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Course not found")
	}
	if err := s.db.Delete(&dto.Course{}, id).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return sendData(c, fiber.StatusOK, nil, "Course deleted successfully")
}

// --- teachers ---

func (s *Server) createTeacher(c *fiber.Ctx) error {
	var teacher dto.Teacher
	if err := c.BodyParser(&teacher); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	teacher.ID = 0
	if teacher.Code == "" {
		teacher.Code = generatedCode("TCH")
	}
	teacher.IsActive = true
	if err := s.db.Create(&teacher).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return sendData(c, fiber.StatusCreated, teacher, "Teacher created successfully")
}

func (s *Server) listTeachers(c *fiber.Ctx) error {
	var teachers []dto.Teacher
	if err := s.db.Find(&teachers).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return sendList(c, teachers, len(teachers))
}

func (s *Server) listActiveTeachers(c *fiber.Ctx) error {
	var teachers []dto.Teacher
	if err := s.db.Where("is_active = ?", true).Find(&teachers).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return sendList(c, teachers, len(teachers))
}

func (s *Server) searchTeachers(c *fiber.Ctx) error {
	name := c.Query("name")
	var teachers []dto.Teacher
	if err := s.db.Find(&teachers).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	matched := make([]dto.Teacher, 0, len(teachers))
	for _, teacher := range teachers {
		if name == "" || containsFold(teacher.Name, name) {
			matched = append(matched, teacher)
		}
	}
	return sendList(c, matched, len(matched))
}

func (s *Server) listTeachersByDepartment(c *fiber.Ctx) error {
	var teachers []dto.Teacher
	if err := s.db.Where("department = ?", c.Params("department")).Find(&teachers).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return sendList(c, teachers, len(teachers))
}

func (s *Server) getTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var teacher dto.Teacher
	err = s.db.First(&teacher, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Teacher not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return sendData(c, fiber.StatusOK, teacher, "")
}

func (s *Server) updateTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var existing dto.Teacher
	if errors.Is(s.db.First(&existing, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Teacher not found")
	}
	var teacher dto.Teacher
	if err := c.BodyParser(&teacher); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	teacher.ID = existing.ID
	if teacher.Code == "" {
		teacher.Code = existing.Code
	}
	if err := s.db.Save(&teacher).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return sendData(c, fiber.StatusOK, teacher, "Teacher updated successfully")
}

func (s *Server) deactivateTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var teacher dto.Teacher
	if errors.Is(s.db.First(&teacher, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Teacher not found")
	}
	teacher.IsActive = !teacher.IsActive
	if err := s.db.Save(&teacher).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return sendData(c, fiber.StatusOK, teacher, "Teacher status updated")
}

func (s *Server) deleteTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var teacher dto.Teacher
	if errors.Is(s.db.First(&teacher, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Teacher not found")
	}
	if err := s.db.Delete(&dto.Teacher{}, id).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return sendData(c, fiber.StatusOK, nil, "Teacher deleted successfully")
}
