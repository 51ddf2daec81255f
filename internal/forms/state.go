package forms

import "github.com/vaughan-dsouza/BeGoForms/internal/validation"

type Status string

const (
	StatusIdle  Status = "idle"
	StatusError Status = "error"
)

// State is what the form is redisplayed with.
type State struct {
	Status     Status             `json:"status"`
	Submission *Submission        `json:"submission,omitempty"`
	Errors     *validation.Errors `json:"errors,omitempty"`
}

// Empty is the state of a freshly opened form.
func Empty() State {
	return State{Status: StatusIdle}
}

// Values returns the submission to prefill the form with.
func (s State) Values() Submission {
	if s.Submission == nil {
		return Submission{Tags: []string{}}
	}
	return *s.Submission
}

// FieldErrors returns the per-field errors, empty when there are none.
func (s State) FieldErrors() validation.FieldErrors {
	if s.Errors == nil {
		return validation.FieldErrors{}
	}
	return s.Errors.FieldErrors
}

func (s State) FormErrors() []string {
	if s.Errors == nil {
		return nil
	}
	return s.Errors.FormErrors
}

// Apply runs the request's intent. When persist is true the submission passed
// validation and should be saved; otherwise the form is redisplayed with state.
func Apply(req Request, v validation.Validator) (state State, persist bool) {
	sub := req.Submission
	sub.Tags = append([]string{}, sub.Tags...)

	switch req.Intent.Kind {
	case IntentListInsert:
		sub.Tags = append(sub.Tags, "")
		return State{Status: StatusIdle, Submission: &sub}, false

	case IntentListRemove:
		if i := req.Intent.Index; i < len(sub.Tags) {
			sub.Tags = append(sub.Tags[:i], sub.Tags[i+1:]...)
		}
		return State{Status: StatusIdle, Submission: &sub}, false
	}

	errs := v.Validate(sub.Input())
	if errs.HasErrors() {
		return State{Status: StatusError, Submission: &sub, Errors: &errs}, false
	}
	return State{Status: StatusIdle, Submission: &sub}, true
}
