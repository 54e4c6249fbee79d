// Package forms binds an input struct to validation and to a create or update
// call, depending on whether an entity is being edited.
package forms

import (
	"academy/client/api"
	"academy/client/notify"
	"academy/schema"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned when the form refuses to submit. No request has
// been made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Submitter[T any] interface {
	Create(ctx context.Context, values T) error
	Update(ctx context.Context, id string, values T) error
}

type Form[T any] struct {
	entity    string
	blank     T
	values    T
	id        string
	open      bool
	errors    map[string]string
	submitter Submitter[T]
	notifier  notify.Notifier
	validate  *validator.Validate
	check     func(T) map[string]string
	prepare   func(values *T, creating bool)
	onSuccess func()
	message   string
}

type Option[T any] func(*Form[T])

// WithCheck runs before schema validation. Any message it returns blocks the
// submit and schema validation is skipped.
func WithCheck[T any](check func(T) map[string]string) Option[T] {
	return func(f *Form[T]) { f.check = check }
}

// WithPrepare adjusts validated values right before they are sent.
func WithPrepare[T any](prepare func(values *T, creating bool)) Option[T] {
	return func(f *Form[T]) { f.prepare = prepare }
}

// WithSuccess runs after a successful submit, before the success notification.
func WithSuccess[T any](fn func()) Option[T] {
	return func(f *Form[T]) { f.onSuccess = fn }
}

// WithSuccessMessage replaces the default "<Entity> <action>d successfully".
func WithSuccessMessage[T any](msg string) Option[T] {
	return func(f *Form[T]) { f.message = msg }
}

func WithValidator[T any](v *validator.Validate) Option[T] {
	return func(f *Form[T]) { f.validate = v }
}

var defaultValidator = schema.New()

// New returns a closed form for entity (used in notifications, e.g. "course")
// whose blank values are restored on every reset.
func New[T any](entity string, blank T, submitter Submitter[T], notifier notify.Notifier, opts ...Option[T]) *Form[T] {
	if notifier == nil {
		notifier = notify.Discard
	}
	f := &Form[T]{
		entity:    entity,
		blank:     blank,
		values:    blank,
		submitter: submitter,
		notifier:  notifier,
		validate:  defaultValidator,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OpenCreate opens the form with blank values.
func (f *Form[T]) OpenCreate() {
	f.reset()
	f.open = true
}

// OpenEdit opens the form bound to id with values pre-filled.
func (f *Form[T]) OpenEdit(id string, values T) {
	f.reset()
	f.id = id
	f.values = values
	f.open = true
}

// Close discards the form state.
func (f *Form[T]) Close() {
	f.reset()
}

func (f *Form[T]) reset() {
	f.values = f.blank
	f.id = ""
	f.errors = nil
	f.open = false
}

func (f *Form[T]) IsOpen() bool   { return f.open }
func (f *Form[T]) Editing() bool  { return f.id != "" }
func (f *Form[T]) ID() string     { return f.id }
func (f *Form[T]) Values() T      { return f.values }
func (f *Form[T]) SetValues(v T)  { f.values = v }
func (f *Form[T]) Entity() string { return f.entity }

// Update edits the values in place.
func (f *Form[T]) Update(fn func(*T)) { fn(&f.values) }

// FieldErrors returns the messages from the last submit attempt.
func (f *Form[T]) FieldErrors() map[string]string { return f.errors }

// Action is "update" when an entity is bound and "create" otherwise.
func (f *Form[T]) Action() string {
	if f.Editing() {
		return "update"
	}
	return "create"
}

// Submit validates and sends the values. On success the form is reset and
// closed. On failure the entered values stay, and a *ValidationError or the
// request error is returned.
func (f *Form[T]) Submit(ctx context.Context) error {
	f.errors = nil

	if f.check != nil {
		if fields := f.check(f.values); len(fields) > 0 {
			f.errors = fields
			return &ValidationError{Fields: fields}
		}
	}
	if err := f.validate.Struct(f.values); err != nil {
		fields := schema.Fields(err)
		if fields == nil {
			return fmt.Errorf("validate %s: %w", f.entity, err)
		}
		f.errors = fields
		return &ValidationError{Fields: fields}
	}

	values := f.values
	if f.prepare != nil {
		f.prepare(&values, !f.Editing())
	}

	action := f.Action()
	var err error
	if f.Editing() {
		err = f.submitter.Update(ctx, f.id, values)
	} else {
		err = f.submitter.Create(ctx, values)
	}
	if err != nil {
		var fe *api.FetchError
		if errors.As(err, &fe) && fe.Status == http.StatusUnprocessableEntity && len(fe.Details) > 0 {
			f.errors = fe.Details
		}
		notify.Errorf(f.notifier, "Error", "Failed to %s %s", action, f.entity)
		return fmt.Errorf("%s %s: %w", action, f.entity, err)
	}

	f.reset()
	if f.onSuccess != nil {
		f.onSuccess()
	}
	if f.message != "" {
		notify.Successf(f.notifier, "Success", "%s", f.message)
		return nil
	}
	notify.Successf(f.notifier, "Success", "%s %sd successfully", capitalize(f.entity), action)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
