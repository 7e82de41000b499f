package assistant

import (
	"context"

	"github.com/google/uuid"
)

// Result is the outcome of one assistant request.
// Text is always safe to show; Err is set when Text is a fallback for a failed call.
type Result struct {
	Text    string
	Err     error
	Limited bool
}

// Succeeded reports whether the text came from the generation service
func (r Result) Succeeded() bool {
	return r.Err == nil && !r.Limited
}

// Task is a pending assistant request. It completes exactly once and is
// never retried.
type Task struct {
	ID   string
	Kind Kind

	done   chan struct{}
	result Result
}

func newTask(kind Kind) *Task {
	return &Task{
		ID:   uuid.NewString(),
		Kind: kind,
		done: make(chan struct{}),
	}
}

// resolvedTask returns a task that is already complete
func resolvedTask(kind Kind, result Result) *Task {
	t := newTask(kind)
	t.complete(result)
	return t
}

// startTask runs fn on its own goroutine and completes the task with its result
func startTask(ctx context.Context, kind Kind, fn func(ctx context.Context) Result) *Task {
	t := newTask(kind)
	go func() {
		t.complete(fn(ctx))
	}()
	return t
}

func (t *Task) complete(result Result) {
	t.result = result
	close(t.done)
}

// Done is closed once the result is available
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Result blocks until the task completes
func (t *Task) Result() Result {
	<-t.done
	return t.result
}

// Wait blocks until the task completes or ctx is done
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
