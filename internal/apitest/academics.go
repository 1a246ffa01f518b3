package apitest

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

func gradePoint(total float64) float64 {
	switch {
	case total >= 90:
		return 10
	case total >= 80:
		return 9
	case total >= 70:
		return 8
	case total >= 60:
		return 7
	case total >= 50:
		return 6
	case total >= 40:
		return 5
	default:
		return 0
	}
}

// decorateGrades fills the denormalized student and course names the real
// backend joins in.
func (s *Server) decorateGrades(grades []dto.Grade) {
	for i := range grades {
		var student dto.Student
		if s.db.Where("code = ?", grades[i].StudentCode).First(&student).Error == nil {
			grades[i].StudentID = student.ID
			grades[i].StudentName = student.FirstName + " " + student.LastName
		}
		var course dto.Course
		if s.db.Where("code = ?", grades[i].CourseCode).First(&course).Error == nil {
			grades[i].CourseID = course.ID
			grades[i].CourseName = course.Name
		}
	}
}

func (s *Server) resolveGradeRefs(grade *dto.Grade) (int, string) {
	var student dto.Student
	if errors.Is(s.db.Where("code = ?", grade.StudentCode).First(&student).Error, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Student not found"
	}
	var course dto.Course
	if errors.Is(s.db.Where("code = ?", grade.CourseCode).First(&course).Error, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Course not found"
	}
	grade.StudentID = student.ID
	grade.CourseID = course.ID
	return 0, ""
}

func (s *Server) createGrade(c *fiber.Ctx) error {
	var grade dto.Grade
	if err := c.BodyParser(&grade); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	grade.ID = 0
	if status, msg := s.resolveGradeRefs(&grade); status != 0 {
		return sendError(c, status, msg)
	}
	grade.TotalMarks = grade.Total()
	grade.GradePoint = gradePoint(grade.TotalMarks)
	if err := s.db.Create(&grade).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to create grade")
	}
	return sendData(c, fiber.StatusCreated, grade, "Grade created successfully")
}

func (s *Server) updateGrade(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid grade id")
	}
	var existing dto.Grade
	if errors.Is(s.db.First(&existing, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Grade not found")
	}
	var grade dto.Grade
	if err := c.BodyParser(&grade); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	grade.ID = existing.ID
	if grade.StudentCode == "" {
		grade.StudentCode = existing.StudentCode
	}
	if grade.CourseCode == "" {
		grade.CourseCode = existing.CourseCode
	}
	if status, msg := s.resolveGradeRefs(&grade); status != 0 {
		return sendError(c, status, msg)
	}
	grade.TotalMarks = grade.Total()
	grade.GradePoint = gradePoint(grade.TotalMarks)
	if err := s.db.Save(&grade).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update grade")
	}
	return sendData(c, fiber.StatusOK, grade, "Grade updated successfully")
}

func (s *Server) deleteGrade(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid grade id")
	}
	var grade dto.Grade
	if errors.Is(s.db.First(&grade, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Grade not found")
	}
	if err := s.db.Delete(&dto.Grade{}, id).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to delete grade")
	}
	return sendData(c, fiber.StatusOK, nil, "Grade deleted successfully")
}

func (s *Server) getGrade(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid grade id")
	}
	var grade dto.Grade
	err = s.db.First(&grade, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Grade not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}
	grades := []dto.Grade{grade}
	s.decorateGrades(grades)
	return sendData(c, fiber.StatusOK, grades[0], "")
}

func (s *Server) listGrades(c *fiber.Ctx, query *gorm.DB) error {
	var grades []dto.Grade
	if err := query.Find(&grades).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	s.decorateGrades(grades)
	return sendList(c, grades, len(grades))
}

func (s *Server) listGradesByStudent(c *fiber.Ctx) error {
	return s.listGrades(c, s.db.Where("student_code = ?", c.Params("code")))
}

func (s *Server) listGradesByStudentSemester(c *fiber.Ctx) error {
	semester, err := c.ParamsInt("semester")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid semester")
	}
	return s.listGrades(c, s.db.Where("student_code = ? AND semester = ?", c.Params("code"), semester))
}

func (s *Server) listGradesByCourse(c *fiber.Ctx) error {
	return s.listGrades(c, s.db.Where("course_code = ?", c.Params("code")))
}

func (s *Server) listGradesByCourseSemester(c *fiber.Ctx) error {
	semester, err := c.ParamsInt("semester")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid semester")
	}
	return s.listGrades(c, s.db.Where("course_code = ? AND semester = ?", c.Params("code"), semester))
}

func (s *Server) studentAverage(c *fiber.Ctx) error {
	var grades []dto.Grade
	if err := s.db.Where("student_code = ?", c.Params("code")).Find(&grades).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	var total float64
	for _, g := range grades {
		total += g.TotalMarks
	}
	average := 0.0
	if len(grades) > 0 {
		average = total / float64(len(grades))
	}
	return c.JSON(fiber.Map{"averageMarks": fmt.Sprintf("%.2f", average)})
}

func (s *Server) studentGPA(c *fiber.Ctx) error {
	query := s.db.Where("student_code = ?", c.Params("code"))
	if semester := c.QueryInt("semester"); semester > 0 {
		query = query.Where("semester = ?", semester)
	}
	var grades []dto.Grade
	if err := query.Find(&grades).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	var points float64
	for _, g := range grades {
		points += g.GradePoint
	}
	gpa := 0.0
	if len(grades) > 0 {
		gpa = points / float64(len(grades))
	}
	return c.JSON(fiber.Map{"gpa": fmt.Sprintf("%.2f", gpa)})
}

// --- attendance ---

func (s *Server) resolveAttendanceRefs(record *dto.Attendance) (int, string) {
	var student dto.Student
	if errors.Is(s.db.Where("code = ?", record.StudentCode).First(&student).Error, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Student not found"
	}
	var course dto.Course
	if errors.Is(s.db.Where("code = ?", record.CourseCode).First(&course).Error, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Course not found"
	}
	record.StudentID = student.ID
	record.CourseID = course.ID
	return 0, ""
}

func (s *Server) createAttendance(c *fiber.Ctx) error {
	var record dto.Attendance
	if err := c.BodyParser(&record); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	record.ID = 0
	if status, msg := s.resolveAttendanceRefs(&record); status != 0 {
		return sendError(c, status, msg)
	}
	if err := s.db.Create(&record).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to create attendance")
	}
	return sendData(c, fiber.StatusCreated, record, "Attendance created successfully")
}

func (s *Server) updateAttendance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	var existing dto.Attendance
	if errors.Is(s.db.First(&existing, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Attendance not found")
	}
	var record dto.Attendance
	if err := c.BodyParser(&record); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	record.ID = existing.ID
	if record.StudentCode == "" {
		record.StudentCode = existing.StudentCode
	}
	if record.CourseCode == "" {
		record.CourseCode = existing.CourseCode
	}
	if status, msg := s.resolveAttendanceRefs(&record); status != 0 {
		return sendError(c, status, msg)
	}
	if err := s.db.Save(&record).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}
	return sendData(c, fiber.StatusOK, record, "Attendance updated successfully")
}

func (s *Server) deleteAttendance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	var record dto.Attendance
	if errors.Is(s.db.First(&record, id).Error, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Attendance not found")
	}
	if err := s.db.Delete(&dto.Attendance{}, id).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	return sendData(c, fiber.StatusOK, nil, "Attendance deleted successfully")
}

func (s *Server) getAttendance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	var record dto.Attendance
	err = s.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sendError(c, fiber.StatusNotFound, "Attendance not found")
	}
	if err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return sendData(c, fiber.StatusOK, record, "")
}

func (s *Server) listAttendance(c *fiber.Ctx, query *gorm.DB) error {
	var records []dto.Attendance
	if err := query.Find(&records).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return sendList(c, records, len(records))
}

func (s *Server) listAttendanceByStudent(c *fiber.Ctx) error {
	return s.listAttendance(c, s.db.Where("student_code = ?", c.Params("code")))
}

func (s *Server) listAttendanceByStudentSemester(c *fiber.Ctx) error {
	semester, err := c.ParamsInt("semester")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid semester")
	}
	return s.listAttendance(c, s.db.Where("student_code = ? AND semester = ?", c.Params("code"), semester))
}

func (s *Server) listAttendanceByCourse(c *fiber.Ctx) error {
	return s.listAttendance(c, s.db.Where("course_code = ?", c.Params("code")))
}

func (s *Server) listAttendanceBySemester(c *fiber.Ctx) error {
	semester, err := c.ParamsInt("semester")
	if err != nil {
		return sendError(c, fiber.StatusBadRequest, "Invalid semester")
	}
	return s.listAttendance(c, s.db.Where("semester = ?", semester))
}

func (s *Server) listAttendanceByDateRange(c *fiber.Ctx) error {
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" || end == "" {
		return sendError(c, fiber.StatusBadRequest, "startDate and endDate are required")
	}
	query := s.db.Where("attendance_date >= ? AND attendance_date <= ?", start, end)
	if semester := c.QueryInt("semester"); semester > 0 {
		query = query.Where("semester = ?", semester)
	}
	return s.listAttendance(c, query)
}

func (s *Server) attendancePercentage(c *fiber.Ctx) error {
	query := s.db.Where("student_code = ?", c.Params("code"))
	if semester := c.QueryInt("semester"); semester > 0 {
		query = query.Where("semester = ?", semester)
	}
	var records []dto.Attendance
	if err := query.Find(&records).Error; err != nil {
		return sendError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	present := 0
	for _, r := range records {
		if r.Status == dto.AttendancePresent {
			present++
		}
	}
	percentage := 0.0
	if len(records) > 0 {
		percentage = float64(present) / float64(len(records)) * 100
	}
	return c.JSON(fiber.Map{"percentage": fmt.Sprintf("%.1f", percentage)})
}
