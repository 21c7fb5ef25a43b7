package roadmap

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/penwyp/go-course-roadmap/internal/core/model"
)

// AddItemRequest is the user input for a new milestone
type AddItemRequest struct {
	Title       string `validate:"required"`
	Description string
	Month       string
	Year        string
}

type saveRequest struct {
	Title string              `validate:"required"`
	Items []model.RoadmapItem `validate:"min=1"`
}

func (r AddItemRequest) normalized() AddItemRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Month = strings.TrimSpace(r.Month)
	r.Year = strings.TrimSpace(r.Year)
	if r.Month == "" {
		r.Month = model.DefaultMonth
	}
	if r.Year == "" {
		r.Year = model.DefaultYear
	}
	return r
}

// toValidationError converts validator output into a *ValidationError.
// Anything else (e.g. InvalidValidationError) is returned unchanged.
func toValidationError(op, message string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Op: op, Fields: fields, Message: message}
}
