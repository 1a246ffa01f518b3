package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/internal/service"
)

// CourseController owns the course list view state. Course drafts carry
// declared validation rules; a draft that fails them never reaches the
// service layer.
type CourseController struct {
	listCore[dto.Course]

	service  service.CourseService
	validate *validator.Validate
	criteria CourseCriteria
	confirm  func(prompt string) bool
	logger   zerolog.Logger
}

// NewCourseController constructs the course list controller.
func NewCourseController(courses service.CourseService, validate *validator.Validate, confirm func(string) bool, logger zerolog.Logger) *CourseController {
	return &CourseController{
		listCore: newListCore[dto.Course](),
		service:  courses,
		validate: validate,
		confirm:  confirm,
		logger:   logger.With().Str("component", "course_controller").Logger(),
	}
}

// Load fetches the full collection, replacing the local one on success.
func (c *CourseController) Load(ctx context.Context) error {
	gen := c.beginLoad()
	items, _, err := c.service.List(ctx)
	return c.completeLoad(gen, items, err, "Failed to load courses", c.recomputeLocked)
}

func (c *CourseController) recomputeLocked() {
	c.filtered = FilterCourses(c.items, c.criteria)
}

// SetCriteria replaces the filter criteria and recomputes the filtered view.
func (c *CourseController) SetCriteria(criteria CourseCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
	c.recomputeLocked()
}

// ResetFilters clears every filter criterion.
func (c *CourseController) ResetFilters() {
	c.SetCriteria(CourseCriteria{})
}

// Courses returns the derived filtered view.
func (c *CourseController) Courses() []dto.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

// All returns the full loaded collection.
func (c *CourseController) All() []dto.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// DepartmentOptions lists the distinct departments of the loaded collection.
func (c *CourseController) DepartmentOptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make([]string, 0, len(c.items))
	for _, course := range c.items {
		values = append(values, course.Department)
	}
	return Departments(values)
}

// OpenCreate resets the draft to entity defaults and opens the dialog.
func (c *CourseController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogCreate, dto.Course{
		Credits:        3,
		TotalSemesters: 1,
	}, 0)
}

// OpenEdit seeds the draft from the selected record and opens the dialog.
func (c *CourseController) OpenEdit(course dto.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogEdit, course, course.ID)
}

// Save validates the draft and aborts with a field error mapping on any
// violation, without issuing a request. A valid draft is created or updated,
// the collection reloads and the dialog closes.
func (c *CourseController) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editingID := c.editingID
	fieldErrors := dto.ValidateCourse(c.validate, draft)
	c.fieldErrors = fieldErrors
	c.mu.Unlock()

	if !fieldErrors.Empty() {
		return nil
	}

	var err error
	if editingID != 0 {
		_, err = c.service.Update(ctx, editingID, draft)
	} else {
		_, err = c.service.Create(ctx, draft)
	}
	if err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to save course"))
		return err
	}

	if loadErr := c.Load(ctx); loadErr != nil {
		return loadErr
	}
	c.CloseDialog()
	c.messages.set(MessageSuccess, "Course saved successfully")
	return nil
}

// Delete asks for confirmation, removes the record and reloads.
func (c *CourseController) Delete(ctx context.Context, id uint) error {
	if c.confirm != nil && !c.confirm("Are you sure?") {
		return nil
	}

	if err := c.service.Delete(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to delete course"))
		return err
	}
	return c.Load(ctx)
}

// ToggleActive flips the course's active flag and reloads.
func (c *CourseController) ToggleActive(ctx context.Context, id uint) error {
	if err := c.service.Deactivate(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to deactivate course"))
		return err
	}
	return c.Load(ctx)
}
