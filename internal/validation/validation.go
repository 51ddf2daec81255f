// Package validation checks a post submission and reports problems in the
// shape the post form renders: form-level errors plus per-field errors.
package validation

import (
	"fmt"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
)

const (
	TitleMaxLength   = 100
	ContentMaxLength = 10000
	TagMaxLength     = 25
	MaxTags          = 5
)

const (
	PolicyManual = "manual"
	PolicySchema = "schema"
)

// Validator checks a post before it is persisted.
type Validator interface {
	Validate(in models.PostInput) Errors
}

type FieldErrors struct {
	Title   []string `json:"title"`
	Content []string `json:"content"`
	Tags    []string `json:"tags"`
}

type Errors struct {
	FormErrors  []string    `json:"formErrors"`
	FieldErrors FieldErrors `json:"fieldErrors"`
}

// NewErrors returns an empty error set whose lists encode as [] rather than null.
func NewErrors() Errors {
	return Errors{
		FormErrors: []string{},
		FieldErrors: FieldErrors{
			Title:   []string{},
			Content: []string{},
			Tags:    []string{},
		},
	}
}

func (e Errors) HasErrors() bool {
	return len(e.FormErrors) > 0 ||
		len(e.FieldErrors.Title) > 0 ||
		len(e.FieldErrors.Content) > 0 ||
		len(e.FieldErrors.Tags) > 0
}

// New returns the validator for the named policy.
func New(policy string) (Validator, error) {
	switch policy {
	case PolicyManual:
		return Manual{}, nil
	case PolicySchema, "":
		return NewSchema(), nil
	default:
		return nil, fmt.Errorf("validation: unknown policy %q", policy)
	}
}

func requiredMessage(label string) string {
	return label + " is required"
}

func maxLengthMessage(label string, max int) string {
	return fmt.Sprintf("%s must be at most %d characters", label, max)
}

func tooManyTagsMessage() string {
	return fmt.Sprintf("At most %d tags are allowed", MaxTags)
}
