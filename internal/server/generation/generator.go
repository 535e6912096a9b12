package generation

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/socialscribe/internal/logging"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultModels is the candidate list used when none is configured.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-flash-latest",
	"gemini-2.5-pro",
	"models/gemini-2.5-flash",
}

// Result is generated text plus the candidate that produced it.
type Result struct {
	Text      string
	ModelUsed string
}

// Generator turns briefs into text by walking an ordered list of candidate
// models. Every call starts again from the top of the list.
type Generator struct {
	model      TextModel
	candidates []string
	logger     logging.Logger
	attempts   *prometheus.CounterVec
}

// NewGenerator builds a Generator. attempts may be nil; when set it must have
// the labels (model, outcome).
func NewGenerator(model TextModel, candidates []string, logger logging.Logger, attempts *prometheus.CounterVec) *Generator {
	return &Generator{
		model:      model,
		candidates: append([]string(nil), candidates...),
		logger:     logger.With("module", "generator"),
		attempts:   attempts,
	}
}

// Candidates returns a copy of the configured model list.
func (g *Generator) Candidates() []string {
	return append([]string(nil), g.candidates...)
}

func (g *Generator) observe(model, outcome string) {
	if g.attempts == nil {
		return
	}
	g.attempts.WithLabelValues(model, outcome).Inc()
}

func checkCompletion(text string) error {
	switch {
	case strings.TrimSpace(text) == "":
		return ErrEmptyCompletion
	case utf8.RuneCountInString(text) > models.MaxFinalTextLength:
		return ErrCompletionTooLong
	}
	return nil
}

// Generate builds the prompt for b and returns the first successful
// completion.
func (g *Generator) Generate(ctx context.Context, b models.Brief) (Result, error) {
	prompt := BuildPrompt(b)

	g.logger.Info(ctx, "Generating content", "platform", b.Platform, "tone", b.Tone)
	g.logger.Debug(ctx, "Prompt", "prompt", prompt)

	out, err := TryCandidates(ctx, g.candidates, func(ctx context.Context, model string) (string, error) {
		text, err := g.model.GenerateText(ctx, model, prompt)
		if err == nil {
			err = checkCompletion(text)
		}
		if err != nil {
			g.observe(model, "failure")
			g.logger.Warn(ctx, "Model unavailable", "model", model, "error", err)
			return "", err
		}
		g.observe(model, "success")
		return text, nil
	})
	if err != nil {
		g.logger.Error(ctx, "Content generation failed", "error", err)
		return Result{}, err
	}

	g.logger.Info(ctx, "Generated content", "model", out.Candidate, "chars", len([]rune(out.Value)))

	return Result{Text: out.Value, ModelUsed: out.Candidate}, nil
}
