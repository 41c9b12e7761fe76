// internal/web/state.go
package web

// Status is the lifecycle of a screen's data. A synchronous render only
// ever shows Loaded or Failed; Idle is the zero value and Loading exists
// for parity with the screen model (a request in flight disables the form
// that started it).
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

// ListState is the explicit per-screen state handed to the templates:
// either the fetched collection or the failure message, never a partially
// applied mix of the two.
type ListState[T any] struct {
	Status Status
	Data   []T
	Error  string
}

// IsFailed reports whether the screen should render its failure banner.
func (s ListState[T]) IsFailed() bool {
	return s.Status == Failed
}

func loaded[T any](data []T) ListState[T] {
	return ListState[T]{Status: Loaded, Data: data}
}

func failed[T any](err error) ListState[T] {
	return ListState[T]{Status: Failed, Error: err.Error()}
}

// Flash is the transient outcome notification of the last action.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}
