package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoAvailableModel is matched by the error TryCandidates returns when every
// candidate failed.
var ErrNoAvailableModel = errors.New("no available model")

// CandidateFailure records why one candidate was skipped.
type CandidateFailure struct {
	Candidate string
	Err       error
}

// ExhaustedError lists every failed candidate in the order they were tried.
type ExhaustedError struct {
	Failures []CandidateFailure
}

func (e *ExhaustedError) Error() string {
	if len(e.Failures) == 0 {
		return ErrNoAvailableModel.Error() + ": no candidates configured"
	}
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %v", f.Candidate, f.Err)
	}
	return ErrNoAvailableModel.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrNoAvailableModel
}

// Outcome is the first successful attempt.
type Outcome[T any] struct {
	Value     T
	Candidate string
}

// AttemptFunc tries one candidate.
type AttemptFunc[T any] func(ctx context.Context, candidate string) (T, error)

// TryCandidates calls attempt for each candidate in order, one at a time, and
// returns the first success. A failure of any kind moves on to the next
// candidate. When all of them fail the result is an *ExhaustedError.
//
// A cancelled context stops the loop before the next attempt and its error is
// returned as is.
func TryCandidates[T any](ctx context.Context, candidates []string, attempt AttemptFunc[T]) (Outcome[T], error) {
	exhausted := &ExhaustedError{}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return Outcome[T]{}, err
		}

		v, err := attempt(ctx, c)
		if err == nil {
			return Outcome[T]{Value: v, Candidate: c}, nil
		}

		exhausted.Failures = append(exhausted.Failures, CandidateFailure{Candidate: c, Err: err})
	}

	return Outcome[T]{}, exhausted
}
