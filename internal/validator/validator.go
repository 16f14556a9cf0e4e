package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"news-notes/internal/domain"
	"news-notes/internal/moderation"
	"news-notes/internal/slugify"
)

var (
	// slugRegex matches user-supplied slugs: letters, digits, hyphens
	// and underscores. Derived slugs always satisfy it.
	slugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]+$`)
)

// Validator validates submitted forms. Comment text additionally runs
// through the moderation filter.
type Validator struct {
	filter *moderation.Filter
}

// NewValidator creates a Validator using the given moderation filter.
func NewValidator(filter *moderation.Filter) *Validator {
	return &Validator{filter: filter}
}

// ValidateNote validates the note create/edit form. An empty slug is
// valid; it is derived from the title later.
func (v *Validator) ValidateNote(f *domain.NoteForm) domain.FieldErrors {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("Title is required."),
			validation.RuneLength(1, 100).Error("Title must be at most 100 characters."),
		),
		validation.Field(&f.Text,
			validation.Required.Error("Text is required."),
		),
		validation.Field(&f.Slug,
			validation.Match(slugRegex).Error("Slug may contain only letters, numbers, hyphens and underscores."),
			validation.RuneLength(0, slugify.MaxLength).Error("Slug must be at most 100 characters."),
		),
	)
	return toFieldErrors(err)
}

// ValidateComment validates the comment form, including the moderation
// rule on text. A banned substring anywhere in the text yields the fixed
// moderation warning on the text field.
func (v *Validator) ValidateComment(f *domain.CommentForm) domain.FieldErrors {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Text,
			validation.Required.Error("Text is required."),
			validation.By(v.filter.Rule()),
		),
	)
	return toFieldErrors(err)
}

// ValidateSignup validates the signup form.
func (v *Validator) ValidateSignup(f *domain.SignupForm) domain.FieldErrors {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Username,
			validation.Required.Error("Username is required."),
			validation.RuneLength(1, 150).Error("Username must be at most 150 characters."),
			validation.Match(usernameRegex).Error("Username may contain only letters, numbers and @/./+/-/_ characters."),
		),
		validation.Field(&f.Password,
			validation.Required.Error("Password is required."),
			validation.RuneLength(8, 128).Error("Password must be at least 8 characters."),
		),
	)
	return toFieldErrors(err)
}

// toFieldErrors converts ozzo validation errors to field-scoped form
// errors keyed by the json field name.
func toFieldErrors(err error) domain.FieldErrors {
	if err == nil {
		return nil
	}
	fe := domain.FieldErrors{}
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			fe[field] = fieldErr.Error()
		}
		return fe
	}
	fe["form"] = err.Error()
	return fe
}
