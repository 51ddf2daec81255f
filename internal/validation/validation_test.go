package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
)

func policies(t *testing.T) map[string]Validator {
	t.Helper()
	out := map[string]Validator{}
	for _, name := range []string{PolicyManual, PolicySchema} {
		v, err := New(name)
		require.NoError(t, err)
		out[name] = v
	}
	return out
}

func TestNewUnknownPolicy(t *testing.T) {
	_, err := New("zod")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   models.PostInput
		want func(e *Errors)
	}{
		{
			name: "valid without tags",
			in:   models.PostInput{Title: "Hello", Content: "World"},
		},
		{
			name: "valid with five tags",
			in: models.PostInput{
				Title:   "Hello",
				Content: "World",
				Tags:    []string{"a", "b", "c", "d", strings.Repeat("e", TagMaxLength)},
			},
		},
		{
			name: "empty title and content",
			in:   models.PostInput{},
			want: func(e *Errors) {
				e.FieldErrors.Title = []string{"Title is required"}
				e.FieldErrors.Content = []string{"Content is required"}
			},
		},
		{
			name: "title at limit",
			in:   models.PostInput{Title: strings.Repeat("t", 100), Content: "c"},
		},
		{
			name: "title over limit",
			in:   models.PostInput{Title: strings.Repeat("t", 101), Content: "c"},
			want: func(e *Errors) {
				e.FieldErrors.Title = []string{"Title must be at most 100 characters"}
			},
		},
		{
			name: "title counts characters not bytes",
			in:   models.PostInput{Title: strings.Repeat("é", 100), Content: "c"},
		},
		{
			name: "content over limit",
			in:   models.PostInput{Title: "t", Content: strings.Repeat("c", 10001)},
			want: func(e *Errors) {
				e.FieldErrors.Content = []string{"Content must be at most 10000 characters"}
			},
		},
		{
			name: "empty and long tags",
			in: models.PostInput{
				Title:   "t",
				Content: "c",
				Tags:    []string{"ok", "", strings.Repeat("x", 26)},
			},
			want: func(e *Errors) {
				e.FieldErrors.Tags = []string{"Tag is required", "Tag must be at most 25 characters"}
			},
		},
		{
			name: "too many tags",
			in: models.PostInput{
				Title:   "t",
				Content: "c",
				Tags:    []string{"1", "2", "3", "4", "5", "6"},
			},
			want: func(e *Errors) {
				e.FieldErrors.Tags = []string{"At most 5 tags are allowed"}
			},
		},
	}

	for name, v := range policies(t) {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				want := NewErrors()
				if tt.want != nil {
					tt.want(&want)
				}
				got := v.Validate(tt.in)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
				}
				assert.Equal(t, tt.want != nil, got.HasErrors())
			})
		}
	}
}

func TestPoliciesAgree(t *testing.T) {
	inputs := []models.PostInput{
		{Title: "", Content: strings.Repeat("c", 10001), Tags: []string{""}},
		{Title: strings.Repeat("t", 101), Content: "", Tags: []string{strings.Repeat("x", 30), "y"}},
		{Title: "ok", Content: "ok", Tags: []string{"", "", "", "", "", "", ""}},
	}

	manual := Manual{}
	schema := NewSchema()
	for _, in := range inputs {
		if diff := cmp.Diff(manual.Validate(in), schema.Validate(in)); diff != "" {
			t.Errorf("policies disagree for %+v (-manual +schema):\n%s", in, diff)
		}
	}
}
