package article

import (
	"strings"

	"github.com/articlehub/backend/internal/domain"
)

const (
	maxTitleLength   = 200
	maxContentLength = 100_000
)

// CreateInput holds parameters for article creation. Ownership is not an
// input: it is always taken from the authenticated principal.
type CreateInput struct {
	Title   string
	Content string
}

// Validate validates the creation input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial article update. Only title
// and content are updatable; unknown fields are rejected at the
// transport layer and ownership cannot be changed at all.
type UpdateInput struct {
	Title   *string
	Content *string
}

// Validate validates the update input. At least one field must be set.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "title", Message: "at least one of title, content is required"})
	}

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if i.Content != nil {
		if strings.TrimSpace(*i.Content) == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
		} else if len(*i.Content) > maxContentLength {
			errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) params() domain.ArticleUpdateParams {
	return domain.ArticleUpdateParams{
		Title:   i.Title,
		Content: i.Content,
	}
}
