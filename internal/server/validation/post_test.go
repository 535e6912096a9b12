package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBrief() models.Brief {
	return models.Brief{
		Platform: models.PlatformTwitter,
		Tone:     models.ToneCasual,
		Topic:    "product launch",
	}
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func fields(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateBrief(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *models.Brief)
		want   []string
	}{
		{name: "valid", mutate: func(b *models.Brief) {}, want: []string{}},
		{name: "valid with constraints", mutate: func(b *models.Brief) { b.Constraints = "mention the date" }, want: []string{}},
		{name: "unknown platform", mutate: func(b *models.Brief) { b.Platform = "Snapchat" }, want: []string{"platform"}},
		{name: "missing platform", mutate: func(b *models.Brief) { b.Platform = "" }, want: []string{"platform"}},
		{name: "wrong case tone", mutate: func(b *models.Brief) { b.Tone = "casual" }, want: []string{"tone"}},
		{name: "blank topic", mutate: func(b *models.Brief) { b.Topic = "   " }, want: []string{"topic"}},
		{name: "topic at limit", mutate: func(b *models.Brief) { b.Topic = strings.Repeat("a", 500) }, want: []string{}},
		{name: "topic over limit", mutate: func(b *models.Brief) { b.Topic = strings.Repeat("a", 501) }, want: []string{"topic"}},
		{name: "multibyte topic at limit", mutate: func(b *models.Brief) { b.Topic = strings.Repeat("é", 500) }, want: []string{}},
		{name: "constraints over limit", mutate: func(b *models.Brief) { b.Constraints = strings.Repeat("c", 201) }, want: []string{"constraints"}},
		{
			name: "everything wrong",
			mutate: func(b *models.Brief) {
				*b = models.Brief{Platform: "MySpace", Tone: "Angry", Constraints: strings.Repeat("c", 300)}
			},
			want: []string{"platform", "tone", "topic", "constraints"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBrief()
			tt.mutate(&b)
			assert.Equal(t, tt.want, fields(ValidateBrief(b)))
		})
	}
}

func TestValidateBrief_Messages(t *testing.T) {
	errs := ValidateBrief(models.Brief{Platform: "Snapchat", Tone: "Casual", Topic: strings.Repeat("x", 501)})
	assert.Equal(t, []string{
		"Invalid platform. Must be one of: Twitter, LinkedIn, Instagram, Facebook",
		"Topic cannot exceed 500 characters",
	}, Messages(errs))
}

func TestValidatePatch(t *testing.T) {
	tests := []struct {
		name  string
		patch models.PostPatch
		want  []string
	}{
		{name: "empty patch", patch: models.PostPatch{}, want: []string{""}},
		{name: "approve only", patch: models.PostPatch{Approved: boolptr(true)}, want: []string{}},
		{name: "text only", patch: models.PostPatch{FinalText: strptr("edited")}, want: []string{}},
		{name: "blank text", patch: models.PostPatch{FinalText: strptr(" \n")}, want: []string{"finalText"}},
		{name: "text too long", patch: models.PostPatch{FinalText: strptr(strings.Repeat("x", models.MaxFinalTextLength+1))}, want: []string{"finalText"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields(ValidatePatch(tt.patch)))
		})
	}
}

func TestValidatePost(t *testing.T) {
	p := &models.Post{
		Platform:      models.PlatformLinkedIn,
		Tone:          models.ToneProfessional,
		Topic:         "hiring",
		GeneratedText: "We are hiring!",
		FinalText:     "We are hiring!",
	}
	assert.Empty(t, ValidatePost(p))

	p.GeneratedText = ""
	p.FinalText = ""
	p.Tone = "Sarcastic"
	assert.Equal(t, []string{"tone", "generatedText", "finalText"}, fields(ValidatePost(p)))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID(uuid.NewString()))

	for _, id := range []string{
		"",
		"abc",
		"507f1f77bcf86cd799439011",
		"{" + uuid.NewString() + "}",
		strings.ReplaceAll(uuid.NewString(), "-", ""),
	} {
		err := ValidateID(id)
		assert.ErrorIs(t, err, common.ErrorInvalidID, "id %q", id)
	}
}

func TestAsError(t *testing.T) {
	assert.NoError(t, AsError(nil))

	err := AsError([]FieldError{{"topic", "Topic is required"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation))

	var ve *common.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Topic is required"}, ve.Errors)
}
