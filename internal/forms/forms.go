// Package forms rebuilds a post submission from flat form fields and applies
// the submission's intent: add a tag slot, remove one, or submit.
//
// Repeated tag inputs arrive as indexed keys (tags[0], tags[1], ...). Each
// POST carries an intent field naming the action the button represents.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
)

// ErrMalformed marks a request whose shape no form of ours produces.
var ErrMalformed = errors.New("forms: malformed submission")

const (
	IntentSubmit     = "submit"
	IntentListInsert = "list-insert"
	IntentListRemove = "list-remove"
)

const tagsPrefix = "tags["

type Intent struct {
	Kind string
	// Index is the slot to drop for list-remove.
	Index int
}

func (i Intent) String() string {
	if i.Kind == IntentListRemove {
		return fmt.Sprintf("%s/%d", i.Kind, i.Index)
	}
	return i.Kind
}

// RemoveIntent is the button value that removes tag slot idx.
func RemoveIntent(idx int) string {
	return Intent{Kind: IntentListRemove, Index: idx}.String()
}

func ParseIntent(s string) (Intent, error) {
	switch s {
	case IntentSubmit, IntentListInsert:
		return Intent{Kind: s}, nil
	}

	rest, ok := strings.CutPrefix(s, IntentListRemove+"/")
	if !ok {
		return Intent{}, fmt.Errorf("%w: unknown intent %q", ErrMalformed, s)
	}
	idx, err := parseIndex(rest)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: intent %q: %v", ErrMalformed, s, err)
	}
	return Intent{Kind: IntentListRemove, Index: idx}, nil
}

// Submission holds the values the user typed, valid or not.
type Submission struct {
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

func (s Submission) Input() models.PostInput {
	return models.PostInput{Title: s.Title, Tags: s.Tags, Content: s.Content}
}

// CanAddTag reports whether the form should offer another tag slot.
func (s Submission) CanAddTag() bool {
	return len(s.Tags) < validation.MaxTags
}

// Request is one parsed POST to the post form.
type Request struct {
	Intent     Intent
	Submission Submission
}

// NewRequest builds a Request from already separated values.
func NewRequest(title, content, intent string, tags []string) (Request, error) {
	in, err := ParseIntent(intent)
	if err != nil {
		return Request{}, err
	}
	if tags == nil {
		tags = []string{}
	}
	return Request{
		Intent:     in,
		Submission: Submission{Title: title, Tags: tags, Content: content},
	}, nil
}

// Parse reads title, content, intent and the indexed tag fields.
func Parse(values url.Values) (Request, error) {
	title, err := required(values, "title")
	if err != nil {
		return Request{}, err
	}
	content, err := required(values, "content")
	if err != nil {
		return Request{}, err
	}
	intent, err := required(values, "intent")
	if err != nil {
		return Request{}, err
	}
	tags, err := ParseTags(values)
	if err != nil {
		return Request{}, err
	}
	return NewRequest(title, content, intent, tags)
}

func required(values url.Values, key string) (string, error) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", fmt.Errorf("%w: missing %s", ErrMalformed, key)
	}
	return v[0], nil
}

// ParseTags collects tags[<n>] fields ordered by n. Gaps are closed. Two
// fields naming the same slot are malformed.
func ParseTags(values url.Values) ([]string, error) {
	byIndex := make(map[int]string)
	for key, v := range values {
		if !strings.HasPrefix(key, tagsPrefix) || !strings.HasSuffix(key, "]") {
			continue
		}
		idx, err := parseIndex(key[len(tagsPrefix) : len(key)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformed, key, err)
		}
		if _, dup := byIndex[idx]; dup || len(v) > 1 {
			return nil, fmt.Errorf("%w: tag slot %d sent twice", ErrMalformed, idx)
		}
		value := ""
		if len(v) > 0 {
			value = v[0]
		}
		byIndex[idx] = value
	}

	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	tags := make([]string, 0, len(indices))
	for _, idx := range indices {
		tags = append(tags, byIndex[idx])
	}
	return tags, nil
}

// parseIndex accepts only the decimal form strconv.Itoa would produce.
func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if idx < 0 {
		return 0, fmt.Errorf("negative index %d", idx)
	}
	if strconv.Itoa(idx) != s {
		return 0, fmt.Errorf("non-canonical index %q", s)
	}
	return idx, nil
}
