package controller

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/internal/service"
)

// StudentController owns the student list view state and orchestrates the
// fetch, filter, mutate, refetch cycle against the student service.
type StudentController struct {
	listCore[dto.Student]

	service  service.StudentService
	criteria StudentCriteria
	confirm  func(prompt string) bool
	logger   zerolog.Logger
	now      func() time.Time
}

// NewStudentController constructs the student list controller. confirm guards
// permanent deletion; a nil func skips the prompt.
func NewStudentController(students service.StudentService, confirm func(string) bool, logger zerolog.Logger) *StudentController {
	return &StudentController{
		listCore: newListCore[dto.Student](),
		service:  students,
		confirm:  confirm,
		logger:   logger.With().Str("component", "student_controller").Logger(),
		now:      time.Now,
	}
}

// Load fetches the full collection, replacing the local one on success. On
// failure the previous collection stays visible behind an error message.
func (c *StudentController) Load(ctx context.Context) error {
	gen := c.beginLoad()
	items, _, err := c.service.List(ctx)
	return c.completeLoad(gen, items, err, "Failed to load students", c.recomputeLocked)
}

func (c *StudentController) recomputeLocked() {
	c.filtered = FilterStudents(c.items, c.criteria)
}

// SetCriteria replaces the filter criteria and recomputes the filtered view.
func (c *StudentController) SetCriteria(criteria StudentCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
	c.recomputeLocked()
}

// ResetFilters clears every filter criterion.
func (c *StudentController) ResetFilters() {
	c.SetCriteria(StudentCriteria{})
}

// Students returns the derived filtered view.
func (c *StudentController) Students() []dto.Student {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

// All returns the full loaded collection.
func (c *StudentController) All() []dto.Student {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// OpenCreate resets the draft to entity defaults and opens the dialog.
func (c *StudentController) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogCreate, dto.Student{
		AdmissionYear:   c.now().Year(),
		CurrentSemester: 1,
	}, 0)
}

// OpenEdit seeds the draft from the selected record and opens the dialog.
func (c *StudentController) OpenEdit(student dto.Student) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openDialogLocked(DialogEdit, student, student.ID)
}

// Save submits the draft: update when an editing id is set, create otherwise.
// On success the collection reloads and the dialog closes; on failure the
// server's message is surfaced and the dialog stays open.
func (c *StudentController) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editingID := c.editingID
	c.mu.Unlock()

	var err error
	if editingID != 0 {
		_, err = c.service.Update(ctx, editingID, draft)
	} else {
		_, err = c.service.Create(ctx, draft)
	}
	if err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to save student"))
		return err
	}

	if loadErr := c.Load(ctx); loadErr != nil {
		return loadErr
	}
	c.CloseDialog()
	return nil
}

// Delete asks for confirmation, removes the record and reloads. The
// collection is left unchanged when the request fails.
func (c *StudentController) Delete(ctx context.Context, id uint) error {
	if c.confirm != nil && !c.confirm("Are you sure?") {
		return nil
	}

	if err := c.service.Delete(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to delete student"))
		return err
	}
	return c.Load(ctx)
}

// ToggleActive flips the student's active flag via the deactivate endpoint
// and reloads. No confirmation is asked, unlike Delete.
func (c *StudentController) ToggleActive(ctx context.Context, id uint) error {
	if err := c.service.Deactivate(ctx, id); err != nil {
		c.messages.set(MessageError, serverMessage(err, "Failed to deactivate student"))
		return err
	}
	return c.Load(ctx)
}
