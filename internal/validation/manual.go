package validation

import (
	"unicode/utf8"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
)

// Manual checks each field by hand.
type Manual struct{}

func (Manual) Validate(in models.PostInput) Errors {
	errs := NewErrors()

	errs.FieldErrors.Title = checkText(errs.FieldErrors.Title, "Title", in.Title, TitleMaxLength)
	errs.FieldErrors.Content = checkText(errs.FieldErrors.Content, "Content", in.Content, ContentMaxLength)

	// Per-tag checks are skipped once the list itself is too long.
	if len(in.Tags) > MaxTags {
		errs.FieldErrors.Tags = append(errs.FieldErrors.Tags, tooManyTagsMessage())
		return errs
	}
	for _, tag := range in.Tags {
		errs.FieldErrors.Tags = checkText(errs.FieldErrors.Tags, "Tag", tag, TagMaxLength)
	}

	return errs
}

func checkText(dst []string, label, value string, max int) []string {
	if value == "" {
		return append(dst, requiredMessage(label))
	}
	if utf8.RuneCountInString(value) > max {
		return append(dst, maxLengthMessage(label, max))
	}
	return dst
}
