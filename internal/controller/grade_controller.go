package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/internal/service"
)

// GradeCriteria selects which grade search the controller issues. At least
// one code must be set; the semester narrows either search.
type GradeCriteria struct {
	StudentCode string
	CourseCode  string
	Semester    int
}

// GradeController owns the grade view state. Grades are searched server-side
// by student or course code; new records resolve both codes to ids before the
// create request is issued, so an unknown code never reaches the backend.
type GradeController struct {
	listCore[dto.Grade]

	service  service.GradeService
	students service.StudentService
	courses  service.CourseService
	validate *validator.Validate
	criteria GradeCriteria
	confirm  func(prompt string) bool
	logger   zerolog.Logger

	average string
	gpa     string
}

// NewGradeController constructs the grade view controller.
func NewGradeController(grades service.GradeService, students service.StudentService, courses service.CourseService, validate *validator.Validate, confirm func(string) bool, logger zerolog.Logger) *GradeController {
	return &GradeController{
		listCore: newListCore[dto.Grade](),
		service:  grades,
		students: students,
		courses:  courses,
		validate: validate,
		confirm:  confirm,
		logger:   logger.With().Str("component", "grade_controller").Logger(),
	}
}

// SetCriteria replaces the search criteria. The collection is only refreshed
// by an explicit Search call.
func (c *GradeController) SetCriteria(criteria GradeCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
}

// Grades returns the loaded collection.
func (c *GradeController) Grades() []dto.Grade {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// Average returns the last loaded overall average metric.
func (c *GradeController) Average() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.average
}

// GPA returns the last loaded semester GPA metric.
func (c *GradeController) GPA() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gpa
}

// Search fetches grades for the current criteria. Without a student or course
// code no request is issued and an error message is surfaced.
func (c *GradeController) Search(ctx context.Context) error {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()

	if criteria.StudentCode == "" && criteria.CourseCode == "" {
		c.messages.set(MessageError, "Please enter Student Code or Course Code to search")
		return nil
	}

	gen := c.beginLoad()

	var items []dto.Grade
	var err error
	switch {
	case criteria.StudentCode != "" && criteria.Semester > 0:
		items, err = c.service.ListByStudentSemester(ctx, criteria.StudentCode, criteria.Semester)
	case criteria.StudentCode != "":
		items, err = c.service.ListByStudent(ctx, criteria.StudentCode)
	case criteria.Semester > 0:
		items, err = c.service.ListByCourseSemester(ctx, criteria.CourseCode, criteria.Semester)
	default:
		items, err = c.service.ListByCourse(ctx, criteria.CourseCode)
	}

	if err != nil {
		return c.completeLoad(gen, nil, err, serverMessage(err, "Failed to fetch grades"), func() {})
	}

	loadErr := c.completeLoad(gen, items, nil, "", func() { c.filtered = c.items })
	if loadErr == nil {
		c.messages.set(MessageSuccess, fmt.Sprintf("Found %d grades", len(items)))
	}
	return loadErr
}

// LoadAnalytics fetches the overall average for the student and, when a
// semester is given, the semester GPA.
func (c *GradeController) LoadAnalytics(ctx context.Context, studentCode string, semester int) error {
	if studentCode == "" {
		c.messages.set(MessageError, "Please enter Student Code for analytics")
		return nil
	}

	average, err := c.service.StudentAverage(ctx, studentCode)
	if err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to fetch analytics"))
		return err
	}

	var gpa string
	if semester > 0 {
		gpa, err = c.service.StudentGPA(ctx, studentCode, semester)
		if err != nil {
			c.messages.set(MessageError, serverMessage(err, "Failed to fetch analytics"))
			return err
		}
	}

	c.mu.Lock()
	c.average = average
	if semester > 0 {
		c.gpa = gpa
	}
	c.mu.Unlock()

	c.messages.set(MessageSuccess, "Analytics loaded successfully")
	return nil
}

// OpenCreate resets the draft to entity defaults and opens the dialog.
func (c *GradeController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogCreate, dto.Grade{Semester: 1}, 0)
}

// OpenEdit seeds the draft from the selected record and opens the dialog.
func (c *GradeController) OpenEdit(grade dto.Grade) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogEdit, grade, grade.ID)
}

// Save validates the draft and, for a new record, resolves the student and
// course codes to ids first; an unknown code aborts with a field error and no
// create call. The derived total always accompanies the submission.
func (c *GradeController) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editingID := c.editingID
	fieldErrors := dto.ValidateGrade(c.validate, draft)
	c.fieldErrors = fieldErrors
	c.mu.Unlock()

	if !fieldErrors.Empty() {
		return nil
	}

	draft.TotalMarks = draft.Total()

	if editingID == 0 {
		resolved, lookupErrors, err := c.resolveCodes(ctx, draft)
		if err != nil {
			c.messages.set(MessageError, serverMessage(err, "Failed to save grade"))
			return err
		}
		if !lookupErrors.Empty() {
			c.mu.Lock()
			c.fieldErrors = lookupErrors
			c.mu.Unlock()
			return nil
		}
		draft = resolved
	}

	var err error
	if editingID != 0 {
		_, err = c.service.Update(ctx, editingID, draft)
	} else {
		_, err = c.service.Create(ctx, draft)
	}
	if err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to save grade"))
		return err
	}

	c.CloseDialog()
	if editingID != 0 {
		c.messages.set(MessageSuccess, "Grade updated successfully!")
	} else {
		c.messages.set(MessageSuccess, "Grade created successfully!")
	}

	c.mu.Lock()
	hasCriteria := c.criteria.StudentCode != "" || c.criteria.CourseCode != ""
	c.mu.Unlock()
	if hasCriteria {
		return c.Search(ctx)
	}
	return nil
}

// resolveCodes maps the draft's human-entered codes to backend ids. A code
// with no match produces a field error rather than a failed create.
func (c *GradeController) resolveCodes(ctx context.Context, draft dto.Grade) (dto.Grade, dto.FieldErrors, error) {
	lookupErrors := dto.FieldErrors{}

	student, err := c.students.GetByCode(ctx, draft.StudentCode)
	switch {
	case err == nil:
		draft.StudentID = student.ID
	case errors.Is(err, service.ErrStudentNotFound):
		lookupErrors["studentCode"] = "Student code not found"
	default:
		return draft, nil, err
	}

	course, err := c.courses.GetByCode(ctx, draft.CourseCode)
	switch {
	case err == nil:
		draft.CourseID = course.ID
	case errors.Is(err, service.ErrCourseNotFound):
		lookupErrors["courseCode"] = "Course code not found"
	default:
		return draft, nil, err
	}

	return draft, lookupErrors, nil
}

// Delete asks for confirmation and removes the record, refreshing via the
// active search or dropping the record locally when no criteria are set.
func (c *GradeController) Delete(ctx context.Context, id uint) error {
	if c.confirm != nil && !c.confirm("Are you sure you want to delete this grade?") {
		return nil
	}

	if err := c.service.Delete(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to delete grade"))
		return err
	}

	c.messages.set(MessageSuccess, "Grade deleted successfully!")

	c.mu.Lock()
	hasCriteria := c.criteria.StudentCode != "" || c.criteria.CourseCode != ""
	if !hasCriteria {
		kept := make([]dto.Grade, 0, len(c.items))
		for _, grade := range c.items {
			if grade.ID != id {
				kept = append(kept, grade)
			}
		}
		c.items = kept
		c.filtered = kept
	}
	c.mu.Unlock()

	if hasCriteria {
		return c.Search(ctx)
	}
	return nil
}
