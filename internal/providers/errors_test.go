package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestFetchFailedErrorClassification(t *testing.T) {
	cause := &RateLimitError{StatusCode: 429}
	err := NewFetchFailed(201939, OpShots, cause)

	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed classification")
	}
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatalf("expected cause to remain reachable")
	}
	ff, ok := AsFetchFailed(fmt.Errorf("search: %w", err))
	if !ok || ff.PlayerID != 201939 || ff.Op != OpShots {
		t.Fatalf("unexpected fetch failed error %+v", ff)
	}
	if !strings.Contains(err.Error(), "201939") {
		t.Fatalf("expected player id in message, got %q", err.Error())
	}
}

func TestNewFetchFailedDoesNotDoubleWrap(t *testing.T) {
	first := NewFetchFailed(1, OpSeasonStats, ErrEmptyResult)
	second := NewFetchFailed(2, OpShots, first)
	if second != first {
		t.Fatalf("expected existing fetch failure to be returned unchanged")
	}
}

func TestFetchFailedErrorWithoutCause(t *testing.T) {
	err := &FetchFailedError{PlayerID: 7, Op: OpPlayerDetail}
	if !errors.Is(err, ErrFetchFailed) || err.Error() == "" {
		t.Fatalf("expected classification and message without cause")
	}
	if _, ok := AsFetchFailed(errors.New("other")); ok {
		t.Fatalf("expected unrelated error not to match")
	}
}
