package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/internal/service"
)

// TeacherController owns the teacher list view state. Like courses, teacher
// drafts carry declared validation rules checked before submission.
type TeacherController struct {
	listCore[dto.Teacher]

	service  service.TeacherService
	validate *validator.Validate
	criteria TeacherCriteria
	confirm  func(prompt string) bool
	logger   zerolog.Logger
}

// NewTeacherController constructs the teacher list controller.
func NewTeacherController(teachers service.TeacherService, validate *validator.Validate, confirm func(string) bool, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		listCore: newListCore[dto.Teacher](),
		service:  teachers,
		validate: validate,
		confirm:  confirm,
		logger:   logger.With().Str("component", "teacher_controller").Logger(),
	}
}

// Load fetches the full collection, replacing the local one on success.
func (c *TeacherController) Load(ctx context.Context) error {
	gen := c.beginLoad()
	items, _, err := c.service.List(ctx)
	return c.completeLoad(gen, items, err, "Failed to load teachers", c.recomputeLocked)
}

func (c *TeacherController) recomputeLocked() {
	c.filtered = FilterTeachers(c.items, c.criteria)
}

// SetCriteria replaces the filter criteria and recomputes the filtered view.
func (c *TeacherController) SetCriteria(criteria TeacherCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
	c.recomputeLocked()
}

// ResetFilters clears every filter criterion.
func (c *TeacherController) ResetFilters() {
	c.SetCriteria(TeacherCriteria{})
}

// Teachers returns the derived filtered view.
func (c *TeacherController) Teachers() []dto.Teacher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

// All returns the full loaded collection.
func (c *TeacherController) All() []dto.Teacher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// DepartmentOptions lists the distinct departments of the loaded collection.
func (c *TeacherController) DepartmentOptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make([]string, 0, len(c.items))
	for _, teacher := range c.items {
		values = append(values, teacher.Department)
	}
	return Departments(values)
}

// OpenCreate resets the draft and opens the dialog.
func (c *TeacherController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogCreate, dto.Teacher{}, 0)
}

// OpenEdit seeds the draft from the selected record and opens the dialog.
func (c *TeacherController) OpenEdit(teacher dto.Teacher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogEdit, teacher, teacher.ID)
}

// Save validates the draft, aborting with field errors before any request is
// issued; a valid draft is created or updated, then the collection reloads.
func (c *TeacherController) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editingID := c.editingID
	fieldErrors := dto.ValidateTeacher(c.validate, draft)
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
		c.messages.set(MessageError, serverMessage(err, "Failed to save teacher"))
		return err
	}

	if loadErr := c.Load(ctx); loadErr != nil {
		return loadErr
	}
	c.CloseDialog()
	c.messages.set(MessageSuccess, "Teacher saved successfully")
	return nil
}

// Delete asks for confirmation, removes the record and reloads.
func (c *TeacherController) Delete(ctx context.Context, id uint) error {
	if c.confirm != nil && !c.confirm("Are you sure?") {
		return nil
	}

	if err := c.service.Delete(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to delete teacher"))
		return err
	}
	return c.Load(ctx)
}

// ToggleActive flips the teacher's active flag and reloads.
func (c *TeacherController) ToggleActive(ctx context.Context, id uint) error {
	if err := c.service.Deactivate(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to deactivate teacher"))
		return err
	}
	return c.Load(ctx)
}
