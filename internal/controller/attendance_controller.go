package controller

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/internal/service"
)

// AttendanceCriteria selects which attendance read the controller issues.
type AttendanceCriteria struct {
	StudentCode string
	CourseCode  string
	Semester    int
	StartDate   string
	EndDate     string
}

// AttendanceController owns the attendance view state. Like grades, records
// are fetched server-side by code or date range, and new records resolve
// student and course codes to ids before the create request is issued.
type AttendanceController struct {
	listCore[dto.Attendance]

	service  service.AttendanceService
	students service.StudentService
	courses  service.CourseService
	validate *validator.Validate
	criteria AttendanceCriteria
	confirm  func(prompt string) bool
	logger   zerolog.Logger
	now      func() time.Time

	percentage string
}

// NewAttendanceController constructs the attendance view controller.
func NewAttendanceController(attendance service.AttendanceService, students service.StudentService, courses service.CourseService, validate *validator.Validate, confirm func(string) bool, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		listCore: newListCore[dto.Attendance](),
		service:  attendance,
		students: students,
		courses:  courses,
		validate: validate,
		confirm:  confirm,
		logger:   logger.With().Str("component", "attendance_controller").Logger(),
		now:      time.Now,
	}
}

// SetCriteria replaces the search criteria. The collection is only refreshed
// by an explicit Search call.
func (c *AttendanceController) SetCriteria(criteria AttendanceCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
}

// Attendances returns the loaded collection.
func (c *AttendanceController) Attendances() []dto.Attendance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// Percentage returns the last loaded attendance percentage metric.
func (c *AttendanceController) Percentage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.percentage
}

func (criteria AttendanceCriteria) empty() bool {
	return criteria.StudentCode == "" && criteria.CourseCode == "" &&
		criteria.Semester == 0 && (criteria.StartDate == "" || criteria.EndDate == "")
}

// Search fetches attendance records for the current criteria: a date range
// when both bounds are set, otherwise by student code, course code or
// semester in that order of precedence.
func (c *AttendanceController) Search(ctx context.Context) error {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()

	if criteria.empty() {
		c.messages.set(MessageError, "Please enter search criteria")
		return nil
	}

	gen := c.beginLoad()

	var items []dto.Attendance
	var err error
	switch {
	case criteria.StartDate != "" && criteria.EndDate != "":
		items, err = c.service.ListByDateRange(ctx, criteria.StartDate, criteria.EndDate, criteria.Semester)
	case criteria.StudentCode != "" && criteria.Semester > 0:
		items, err = c.service.ListByStudentSemester(ctx, criteria.StudentCode, criteria.Semester)
	case criteria.StudentCode != "":
		items, err = c.service.ListByStudent(ctx, criteria.StudentCode)
	case criteria.CourseCode != "":
		items, err = c.service.ListByCourse(ctx, criteria.CourseCode)
	default:
		items, err = c.service.ListBySemester(ctx, criteria.Semester)
	}

	if err != nil {
		return c.completeLoad(gen, nil, err, serverMessage(err, "Failed to fetch attendance"), func() {})
	}
	return c.completeLoad(gen, items, nil, "", func() { c.filtered = c.items })
}

// LoadPercentage fetches the attendance percentage for a student semester.
func (c *AttendanceController) LoadPercentage(ctx context.Context, studentCode string, semester int) error {
	if studentCode == "" {
		c.messages.set(MessageError, "Please enter Student Code for analytics")
		return nil
	}

	percentage, err := c.service.Percentage(ctx, studentCode, semester)
	if err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to fetch attendance percentage"))
		return err
	}

	c.mu.Lock()
	c.percentage = percentage
	c.mu.Unlock()
	return nil
}

// OpenCreate resets the draft to entity defaults and opens the dialog.
func (c *AttendanceController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogCreate, dto.Attendance{
		AttendanceDate: c.now().Format("2006-01-02"),
		Status:         dto.AttendancePresent,
		Semester:       1,
	}, 0)
}

// OpenEdit seeds the draft from the selected record and opens the dialog.
func (c *AttendanceController) OpenEdit(attendance dto.Attendance) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogEdit, attendance, attendance.ID)
}

// Save validates the draft (the status enumeration included) and, for a new
// record, resolves both codes to ids; an unknown code aborts with a field
// error and no create call.
func (c *AttendanceController) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editingID := c.editingID
	fieldErrors := dto.ValidateAttendance(c.validate, draft)
	c.fieldErrors = fieldErrors
	c.mu.Unlock()

	if !fieldErrors.Empty() {
		return nil
	}

	if editingID == 0 {
		resolved, lookupErrors, err := c.resolveCodes(ctx, draft)
		if err != nil {
			c.messages.set(MessageError, serverMessage(err, "Failed to save attendance"))
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

	var saved dto.Attendance
	var err error
	if editingID != 0 {
		saved, err = c.service.Update(ctx, editingID, draft)
	} else {
		saved, err = c.service.Create(ctx, draft)
	}
	if err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to save attendance"))
		return err
	}

	c.CloseDialog()
	c.messages.set(MessageSuccess, "Attendance saved successfully!")

	c.mu.Lock()
	criteria := c.criteria
	if criteria.empty() {
		if editingID != 0 {
			for i, record := range c.items {
				if record.ID == editingID {
					c.items[i] = saved
					break
				}
			}
		} else {
			c.items = append(c.items, saved)
		}
		c.filtered = c.items
	}
	c.mu.Unlock()

	if !criteria.empty() {
		return c.Search(ctx)
	}
	return nil
}

func (c *AttendanceController) resolveCodes(ctx context.Context, draft dto.Attendance) (dto.Attendance, dto.FieldErrors, error) {
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

// Delete asks for confirmation and removes exactly the targeted record from
// the collection.
func (c *AttendanceController) Delete(ctx context.Context, id uint) error {
	if c.confirm != nil && !c.confirm("Are you sure?") {
		return nil
	}

	if err := c.service.Delete(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to delete attendance"))
		return err
	}

	c.mu.Lock()
	kept := make([]dto.Attendance, 0, len(c.items))
	for _, record := range c.items {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	c.items = kept
	c.filtered = kept
	c.mu.Unlock()

	c.messages.set(MessageSuccess, "Attendance deleted successfully!")
	return nil
}
