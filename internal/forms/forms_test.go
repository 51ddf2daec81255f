package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		in      string
		want    Intent
		wantErr bool
	}{
		{in: "submit", want: Intent{Kind: IntentSubmit}},
		{in: "list-insert", want: Intent{Kind: IntentListInsert}},
		{in: "list-remove/0", want: Intent{Kind: IntentListRemove, Index: 0}},
		{in: "list-remove/12", want: Intent{Kind: IntentListRemove, Index: 12}},
		{in: "", wantErr: true},
		{in: "publish", wantErr: true},
		{in: "list-remove", wantErr: true},
		{in: "list-remove/", wantErr: true},
		{in: "list-remove/x", wantErr: true},
		{in: "list-remove/-1", wantErr: true},
		{in: "list-remove/+1", wantErr: true},
		{in: "list-remove/01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIntent(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseTagsOrdersByIndex(t *testing.T) {
	values := url.Values{
		"title":    {"t"},
		"tags[2]":  {"c"},
		"tags[0]":  {"a"},
		"tags[1]":  {"b"},
		"tags[10]": {"k"},
	}
	tags, err := ParseTags(values)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "k"}, tags)
}

func TestParseTagsNone(t *testing.T) {
	tags, err := ParseTags(url.Values{"title": {"t"}})
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestParseTagsBadIndex(t *testing.T) {
	for _, key := range []string{"tags[]", "tags[x]", "tags[-2]", "tags[+1]", "tags[01]", "tags[00]"} {
		_, err := ParseTags(url.Values{key: {"v"}})
		assert.ErrorIs(t, err, ErrMalformed, key)
	}
}

func TestParseTagsDuplicateSlot(t *testing.T) {
	tests := map[string]url.Values{
		"leading zero": {"tags[0]": {"a"}, "tags[1]": {"x"}, "tags[01]": {"y"}},
		"plus sign":    {"tags[2]": {"x"}, "tags[+2]": {"y"}},
		"repeated key": {"tags[0]": {"x", "y"}},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTags(values)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseTagsIsDeterministic(t *testing.T) {
	values := url.Values{"tags[3]": {"d"}, "tags[0]": {"a"}, "tags[10]": {"e"}, "tags[1]": {"b"}, "tags[2]": {"c"}}
	for range 50 {
		tags, err := ParseTags(values)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c", "d", "e"}, tags)
	}
}

func TestParseRequiresFields(t *testing.T) {
	full := url.Values{"title": {"t"}, "content": {"c"}, "intent": {"submit"}}

	req, err := Parse(full)
	require.NoError(t, err)
	assert.Equal(t, Submission{Title: "t", Content: "c", Tags: []string{}}, req.Submission)

	for _, key := range []string{"title", "content", "intent"} {
		values := url.Values{}
		for k, v := range full {
			if k != key {
				values[k] = v
			}
		}
		_, err := Parse(values)
		assert.ErrorIs(t, err, ErrMalformed, key)
	}
}

func request(t *testing.T, intent string, tags ...string) Request {
	t.Helper()
	req, err := NewRequest("Title", "Content", intent, tags)
	require.NoError(t, err)
	return req
}

func TestApplyListInsert(t *testing.T) {
	v := validation.Manual{}
	for n := 0; n <= 6; n++ {
		tags := make([]string, n)
		state, persist := Apply(request(t, "list-insert", tags...), v)
		assert.False(t, persist)
		assert.Equal(t, StatusIdle, state.Status)
		assert.Len(t, state.Submission.Tags, n+1)
		assert.Equal(t, "", state.Submission.Tags[n])
		assert.Nil(t, state.Errors)
	}
}

func TestApplyListRemove(t *testing.T) {
	v := validation.Manual{}

	state, persist := Apply(request(t, "list-remove/1", "a", "b", "c"), v)
	assert.False(t, persist)
	assert.Equal(t, []string{"a", "c"}, state.Submission.Tags)

	state, _ = Apply(request(t, "list-remove/0", "a", "b", "c"), v)
	assert.Equal(t, []string{"b", "c"}, state.Submission.Tags)

	state, _ = Apply(request(t, "list-remove/2", "a", "b", "c"), v)
	assert.Equal(t, []string{"a", "b"}, state.Submission.Tags)

	state, _ = Apply(request(t, "list-remove/3", "a", "b", "c"), v)
	assert.Equal(t, []string{"a", "b", "c"}, state.Submission.Tags)
}

func TestApplyDoesNotMutateRequest(t *testing.T) {
	req := request(t, "list-remove/0", "a", "b")
	Apply(req, validation.Manual{})
	assert.Equal(t, []string{"a", "b"}, req.Submission.Tags)
}

func TestApplySubmit(t *testing.T) {
	v := validation.NewSchema()

	state, persist := Apply(request(t, "submit", "go", "web"), v)
	assert.True(t, persist)
	assert.Nil(t, state.Errors)

	req, err := NewRequest("", "Content", "submit", nil)
	require.NoError(t, err)
	state, persist = Apply(req, v)
	assert.False(t, persist)
	assert.Equal(t, StatusError, state.Status)
	require.NotNil(t, state.Errors)
	assert.Equal(t, []string{"Title is required"}, state.Errors.FieldErrors.Title)
	assert.Equal(t, "Content", state.Submission.Content)
}

func TestSubmissionCanAddTag(t *testing.T) {
	assert.True(t, Submission{Tags: []string{"1", "2", "3", "4"}}.CanAddTag())
	assert.False(t, Submission{Tags: []string{"1", "2", "3", "4", "5"}}.CanAddTag())
}

func TestEmptyStateValues(t *testing.T) {
	s := Empty()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, Submission{Tags: []string{}}, s.Values())
	assert.Empty(t, s.FieldErrors().Title)
	assert.Nil(t, s.FormErrors())
}
