// Package validation holds the explicit, storage-independent rules for briefs,
// patches and post records. Every function returns the full list of broken
// rules rather than stopping at the first one.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/google/uuid"
)

// FieldError describes one broken rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

var (
	platformNames = joinNames(models.Platforms)
	toneNames     = joinNames(models.Tones)
)

func joinNames[T ~string](vs []T) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

// ValidateBrief checks a generation request.
func ValidateBrief(b models.Brief) []FieldError {
	var errs []FieldError

	if !b.Platform.Valid() {
		errs = append(errs, FieldError{"platform", "Invalid platform. Must be one of: " + platformNames})
	}

	if !b.Tone.Valid() {
		errs = append(errs, FieldError{"tone", "Invalid tone. Must be one of: " + toneNames})
	}

	if strings.TrimSpace(b.Topic) == "" {
		errs = append(errs, FieldError{"topic", "Topic is required"})
	} else if length(b.Topic) > models.MaxTopicLength {
		errs = append(errs, FieldError{"topic", fmt.Sprintf("Topic cannot exceed %d characters", models.MaxTopicLength)})
	}

	if length(b.Constraints) > models.MaxConstraintsLength {
		errs = append(errs, FieldError{"constraints", fmt.Sprintf("Constraints cannot exceed %d characters", models.MaxConstraintsLength)})
	}

	return errs
}

// ValidatePatch checks the shape of a partial update before it is applied.
func ValidatePatch(p models.PostPatch) []FieldError {
	if p.Empty() {
		return []FieldError{{"", "No updatable fields provided. Allowed fields: finalText, approved"}}
	}

	if p.FinalText != nil {
		return validateFinalText(*p.FinalText)
	}

	return nil
}

func validateFinalText(s string) []FieldError {
	if strings.TrimSpace(s) == "" {
		return []FieldError{{"finalText", "Final text cannot be empty"}}
	}
	if length(s) > models.MaxFinalTextLength {
		return []FieldError{{"finalText", fmt.Sprintf("Final text cannot exceed %d characters", models.MaxFinalTextLength)}}
	}
	return nil
}

// ValidatePost re-checks a complete record before it is written.
func ValidatePost(p *models.Post) []FieldError {
	errs := ValidateBrief(models.Brief{
		Platform:    p.Platform,
		Tone:        p.Tone,
		Topic:       p.Topic,
		Constraints: p.Constraints,
	})

	if strings.TrimSpace(p.GeneratedText) == "" {
		errs = append(errs, FieldError{"generatedText", "Generated text is required"})
	}

	errs = append(errs, validateFinalText(p.FinalText)...)

	return errs
}

// ValidateID checks that id has the format assigned by the store.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return common.ErrorInvalidID
	}
	return nil
}

// AsError folds field errors into a *common.ValidationError, or returns nil
// when the list is empty.
func AsError(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return common.NewValidationError(Messages(errs)...)
}

// Messages returns the human-readable messages of errs.
func Messages(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}
