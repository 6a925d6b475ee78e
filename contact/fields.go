// Package contact implements the landing page contact form: field
// validation, the single-insert submission flow and optional notification.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Messages shown to the visitor.
const (
	MsgMissingFields   = "Please fill in all fields"
	MsgUnknownInterest = "Please choose one of the listed interests"
	MsgGenericFailure  = "Something went wrong. Please try again."
	MsgInFlight        = "A submission is already in progress"
)

// ErrInFlight is returned when a submission for the same key has not
// resolved yet.
var ErrInFlight = errors.New("contact: submission already in flight")

// Fields is the raw form input.
type Fields struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Interest string `json:"interest" form:"interest"`
	Message  string `json:"message" form:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed.
func (f Fields) Trimmed() Fields {
	return Fields{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Interest: strings.TrimSpace(f.Interest),
		Message:  strings.TrimSpace(f.Message),
	}
}

// IsZero reports whether every field is empty.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// Validate requires all four fields to be non-blank and the interest to be
// one of the listed values.
func (f Fields) Validate() error {
	t := f.Trimmed()
	var missing []string
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Email == "" {
		missing = append(missing, "email")
	}
	if t.Interest == "" {
		missing = append(missing, "interest")
	}
	if t.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: MsgMissingFields, Fields: missing}
	}
	if !Interest(t.Interest).Valid() {
		return &ValidationError{Message: MsgUnknownInterest, Fields: []string{"interest"}}
	}
	return nil
}

// ValidationError describes input that was rejected before any insert.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RemoteError wraps a failed insert. Message is what the datastore reported,
// if anything.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("contact: insert failed: %s", e.Message)
	}
	return fmt.Sprintf("contact: insert failed: %v", e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the visitor for this failure.
func (e *RemoteError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return MsgGenericFailure
}

// Submission is the record written to the datastore.
type Submission struct {
	ID        string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Interest  string    `json:"interest"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FormState is the view model of the contact form.
type FormState struct {
	Fields     Fields
	Submitting bool
	Success    bool
	Error      string
}
