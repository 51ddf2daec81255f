package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vaughan-dsouza/BeGoForms/internal/models"
)

// postSchema mirrors the length limits declared above; keep them in sync.
type postSchema struct {
	Title   string   `validate:"required,max=100"`
	Tags    []string `validate:"max=5,dive,required,max=25"`
	Content string   `validate:"required,max=10000"`
}

// Schema delegates the rules to struct tags evaluated by validator/v10.
type Schema struct {
	v *validator.Validate
}

func NewSchema() *Schema {
	return &Schema{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (s *Schema) Validate(in models.PostInput) Errors {
	errs := NewErrors()

	err := s.v.Struct(postSchema{Title: in.Title, Tags: in.Tags, Content: in.Content})
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.FormErrors = append(errs.FormErrors, err.Error())
		return errs
	}

	for _, fe := range verrs {
		field := fe.StructField()
		element := strings.Contains(field, "[")
		if element {
			field = field[:strings.Index(field, "[")]
		}

		switch field {
		case "Title":
			errs.FieldErrors.Title = append(errs.FieldErrors.Title, message("Title", fe.Tag(), TitleMaxLength))
		case "Content":
			errs.FieldErrors.Content = append(errs.FieldErrors.Content, message("Content", fe.Tag(), ContentMaxLength))
		case "Tags":
			if element {
				errs.FieldErrors.Tags = append(errs.FieldErrors.Tags, message("Tag", fe.Tag(), TagMaxLength))
			} else {
				errs.FieldErrors.Tags = append(errs.FieldErrors.Tags, tooManyTagsMessage())
			}
		default:
			errs.FormErrors = append(errs.FormErrors, fe.Error())
		}
	}

	return errs
}

func message(label, tag string, max int) string {
	if tag == "required" {
		return requiredMessage(label)
	}
	return maxLengthMessage(label, max)
}
