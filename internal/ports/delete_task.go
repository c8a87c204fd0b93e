package ports

import (
	"context"
	"sync"
)

// DeleteTask tracks a deletion committed in the background.
// Callers may wait on it or ignore it; failures are also reported by the
// gateway itself.
type DeleteTask struct {
	ID string

	done chan struct{}
	once sync.Once
	err  error
}

// NewDeleteTask returns a pending task for id.
func NewDeleteTask(id string) *DeleteTask {
	return &DeleteTask{ID: id, done: make(chan struct{})}
}

// CompletedDeleteTask returns a task that has already finished with err.
func CompletedDeleteTask(id string, err error) *DeleteTask {
	t := NewDeleteTask(id)
	t.Complete(err)

	return t
}

// Complete records the outcome. Only the first call has an effect.
func (t *DeleteTask) Complete(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Done is closed once the commit finished.
func (t *DeleteTask) Done() <-chan struct{} {
	return t.done
}

// Err returns the commit error. It is nil until Done is closed.
func (t *DeleteTask) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the commit finished or ctx ends.
func (t *DeleteTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
