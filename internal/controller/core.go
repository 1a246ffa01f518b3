package controller

import (
	"errors"
	"sync"

	"github.com/noah-isme/campus-admin-go/internal/dto"
	"github.com/noah-isme/campus-admin-go/pkg/rest"
)

// Status is the lifecycle state of a list view.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

// DialogMode is the nested dialog sub-state of a list view.
type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreate
	DialogEdit
)

// listCore holds the state every list view controller shares: the fetched
// collection, the derived filtered view, the dialog sub-state with its draft,
// and the load generation used to discard responses that were superseded by a
// later load. Methods on the embedding controller take the mutex; helpers
// suffixed Locked assume it is already held.
type listCore[T any] struct {
	mu          sync.Mutex
	status      Status
	items       []T
	filtered    []T
	dialog      DialogMode
	editingID   uint
	draft       T
	fieldErrors dto.FieldErrors
	messages    *messageCenter
	loadGen     uint64
}

func newListCore[T any]() listCore[T] {
	return listCore[T]{
		items:       []T{},
		filtered:    []T{},
		fieldErrors: dto.FieldErrors{},
		messages:    newMessageCenter(messageClearDelay),
	}
}

// beginLoad marks the view as loading and returns the generation token for
// this load. A response is only applied while its token is still current.
func (c *listCore[T]) beginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadGen++
	c.status = StatusLoading
	return c.loadGen
}

// completeLoad applies a load result unless a newer load was issued in the
// meantime. On failure the previous collection stays visible. recompute is
// called under the lock to rebuild the filtered view.
func (c *listCore[T]) completeLoad(gen uint64, items []T, err error, failMessage string, recompute func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.loadGen {
		return nil
	}

	if err != nil {
		c.status = StatusErrored
		c.messages.set(MessageError, failMessage)
		return err
	}

	if items == nil {
		items = []T{}
	}
	c.items = items
	c.status = StatusLoaded
	recompute()
	return nil
}

func (c *listCore[T]) openDialogLocked(mode DialogMode, draft T, editingID uint) {
	c.dialog = mode
	c.draft = draft
	c.editingID = editingID
	c.fieldErrors = dto.FieldErrors{}
}

func (c *listCore[T]) closeDialogLocked() {
	var zero T
	c.dialog = DialogClosed
	c.draft = zero
	c.editingID = 0
	c.fieldErrors = dto.FieldErrors{}
}

// CloseDialog discards the draft and closes the dialog.
func (c *listCore[T]) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeDialogLocked()
}

// Dialog returns the current dialog sub-state.
func (c *listCore[T]) Dialog() DialogMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialog
}

// Status returns the lifecycle state of the view.
func (c *listCore[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Draft returns the in-progress form representation.
func (c *listCore[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft replaces the in-progress form representation.
func (c *listCore[T]) SetDraft(draft T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = draft
}

// EditingID returns the id being edited, or zero for a create draft.
func (c *listCore[T]) EditingID() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// FieldErrors returns the field to message mapping from the last validation.
func (c *listCore[T]) FieldErrors() dto.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := dto.FieldErrors{}
	for field, message := range c.fieldErrors {
		out[field] = message
	}
	return out
}

// Message returns the current transient message, if any.
func (c *listCore[T]) Message() Message {
	return c.messages.message()
}

func (c *listCore[T]) itemsLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *listCore[T]) filteredLocked() []T {
	out := make([]T, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// serverMessage prefers the backend's message payload, falling back to the
// per-action generic string.
func serverMessage(err error, fallback string) string {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
