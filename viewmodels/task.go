package viewmodels

import (
	"context"
	"sync"
)

// Task is a handle on one asynchronous view model operation.
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Done is closed once the dispatcher has run the task's completion, i.e.
// after its result has been committed or dropped.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) Wait() {
	<-t.done
}

// Cancel stops the task. Its result is never committed; the view model
// clears its busy flag without recording an error.
func (t *Task) Cancel() {
	t.cancel()
}

type settlement int

const (
	// settleCommit means the task is current and should apply its result.
	settleCommit settlement = iota
	// settleCancelled means the task is current but was cancelled by its caller.
	settleCancelled
	// settleStale means the task was superseded or its view model closed.
	settleStale
)

// runner keeps at most one current task per view model.
type runner struct {
	ctx      context.Context
	dispatch Dispatcher

	lock    sync.Mutex
	current *Task
	closed  bool
	wg      sync.WaitGroup
}

func newRunner(ctx context.Context, dispatch Dispatcher) *runner {
	return &runner{ctx: ctx, dispatch: dispatch}
}

// run makes a new task current, cancelling the previous one, and runs
// work on its own goroutine. The func work returns is handed to the
// dispatcher. run returns nil once the runner is closed.
//
// View models call run from inside the state update that sets their busy
// flag, so publishing a task and marking the state busy commit together.
// The lock order is always observable state, then runner.
func (r *runner) run(work func(ctx context.Context) func(t *Task)) *Task {
	r.lock.Lock()
	if r.closed {
		r.lock.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(r.ctx)
	task := &Task{ctx: ctx, cancel: cancel, done: make(chan struct{})}
	prev := r.current
	r.current = task
	r.wg.Add(1)
	r.lock.Unlock()

	if prev != nil {
		prev.cancel()
	}

	go func() {
		defer r.wg.Done()
		finish := work(ctx)
		r.dispatch(func() {
			defer close(task.done)
			finish(task)
		})
	}()
	return task
}

// settle reports how t's result must be treated and retires t when it is
// current. Call it from inside the state mutation that applies the result.
func (r *runner) settle(t *Task) settlement {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.current != t {
		return settleStale
	}
	r.current = nil
	cancelled := t.ctx.Err() != nil
	t.cancel()
	if cancelled {
		return settleCancelled
	}
	return settleCommit
}

// cancelCurrent retires and cancels the current task, dropping its result.
func (r *runner) cancelCurrent() {
	r.lock.Lock()
	current := r.current
	r.current = nil
	r.lock.Unlock()

	if current != nil {
		current.cancel()
	}
}

// close cancels the current task and waits for every task goroutine.
func (r *runner) close() {
	r.lock.Lock()
	r.closed = true
	r.lock.Unlock()

	r.cancelCurrent()
	r.wg.Wait()
}
