package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryCandidates_FirstSuccessWins(t *testing.T) {
	var tried []string
	out, err := TryCandidates(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, c string) (string, error) {
		tried = append(tried, c)
		if c == "a" {
			return "", errors.New("quota exceeded")
		}
		return "text from " + c, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "b", out.Candidate)
	assert.Equal(t, "text from b", out.Value)
	assert.Equal(t, []string{"a", "b"}, tried, "must stop after the first success")
}

func TestTryCandidates_AllFail(t *testing.T) {
	out, err := TryCandidates(context.Background(), []string{"a", "b"}, func(ctx context.Context, c string) (int, error) {
		return 0, errors.New(c + " not found")
	})

	require.Error(t, err)
	assert.Zero(t, out)
	assert.True(t, errors.Is(err, ErrNoAvailableModel))

	var ex *ExhaustedError
	require.True(t, errors.As(err, &ex))
	require.Len(t, ex.Failures, 2)
	assert.Equal(t, "a", ex.Failures[0].Candidate)
	assert.Equal(t, "b", ex.Failures[1].Candidate)
	assert.Equal(t, "no available model (a: a not found; b: b not found)", err.Error())
}

func TestTryCandidates_EmptyList(t *testing.T) {
	called := false
	_, err := TryCandidates(context.Background(), nil, func(ctx context.Context, c string) (string, error) {
		called = true
		return "", nil
	})

	assert.False(t, called)
	assert.ErrorIs(t, err, ErrNoAvailableModel)
	assert.Contains(t, err.Error(), "no candidates configured")
}

func TestTryCandidates_SequentialOrder(t *testing.T) {
	var order []string
	_, _ = TryCandidates(context.Background(), []string{"x", "y", "z"}, func(ctx context.Context, c string) (struct{}, error) {
		order = append(order, c)
		return struct{}{}, errors.New("fail")
	})
	assert.Equal(t, []string{"x", "y", "z"}, order)
}

func TestTryCandidates_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var tried []string
	_, err := TryCandidates(ctx, []string{"a", "b"}, func(ctx context.Context, c string) (string, error) {
		tried = append(tried, c)
		cancel()
		return "", errors.New("timeout")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrNoAvailableModel))
	assert.Equal(t, []string{"a"}, tried)
}
