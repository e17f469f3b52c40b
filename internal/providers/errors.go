package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no upstream provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrFetchFailed classifies every failed or unusable provider fetch.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrEmptyResult marks a fetch that succeeded but returned nothing usable.
	ErrEmptyResult = errors.New("empty result")
)

// FetchFailedError records which player and operation a failed fetch was for.
type FetchFailedError struct {
	PlayerID int
	Op       string
	Err      error
}

func (e *FetchFailedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: player %d: %s", e.Op, e.PlayerID, ErrFetchFailed)
	}
	return fmt.Sprintf("%s: player %d: %s: %v", e.Op, e.PlayerID, ErrFetchFailed, e.Err)
}

func (e *FetchFailedError) Unwrap() error {
	return e.Err
}

// Is makes every FetchFailedError match ErrFetchFailed.
func (e *FetchFailedError) Is(target error) bool {
	return target == ErrFetchFailed
}

// NewFetchFailed wraps err unless it already is a FetchFailedError.
func NewFetchFailed(playerID int, op string, err error) error {
	var existing *FetchFailedError
	if errors.As(err, &existing) {
		return err
	}
	return &FetchFailedError{PlayerID: playerID, Op: op, Err: err}
}

// AsFetchFailed attempts to unwrap an error into a FetchFailedError.
func AsFetchFailed(err error) (*FetchFailedError, bool) {
	var ffErr *FetchFailedError
	if errors.As(err, &ffErr) {
		return ffErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
