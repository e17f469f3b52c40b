package stats

// State tags a Result.
type State string

const (
	StatePopulated State = "populated"
	StateEmpty     State = "empty"
	StateFailed    State = "failed"
)

// Result is the outcome of a fetch: a populated value, an explicit empty, or a failure.
type Result[T any] struct {
	State State
	Value T
	Err   error
}

// Populated wraps a value.
func Populated[T any](v T) Result[T] {
	return Result[T]{State: StatePopulated, Value: v}
}

// Empty reports that the fetch succeeded with nothing to show.
func Empty[T any]() Result[T] {
	return Result[T]{State: StateEmpty}
}

// Failed wraps an error.
func Failed[T any](err error) Result[T] {
	return Result[T]{State: StateFailed, Err: err}
}

// Get returns the value and whether the result is populated.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.State == StatePopulated
}
