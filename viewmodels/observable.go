package viewmodels

import "sync"

// Observable holds a state value and notifies subscribers of each commit.
type Observable[S any] struct {
	lock     sync.Mutex
	state    S
	subs     []subscription[S]
	nextId   int
	pending  []S
	draining bool
}

type subscription[S any] struct {
	id int
	fn func(S)
}

func NewObservable[S any](initial S) *Observable[S] {
	return &Observable[S]{state: initial}
}

func (o *Observable[S]) Get() S {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.state
}

// Subscribe registers fn and returns a func that removes it. The current
// state is not replayed; call Get for it.
func (o *Observable[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	o.lock.Lock()
	defer o.lock.Unlock()
	id := o.nextId
	o.nextId++
	o.subs = append(o.subs, subscription[S]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			o.lock.Lock()
			defer o.lock.Unlock()
			for i, sub := range o.subs {
				if sub.id == id {
					subs := make([]subscription[S], 0, len(o.subs)-1)
					subs = append(subs, o.subs[:i]...)
					o.subs = append(subs, o.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Update calls mutate with a copy of the state under the lock. If mutate
// returns true the copy is committed and subscribers are notified once the
// lock is released; the committed state and true are returned.
//
// Notifications are delivered in commit order. A subscriber that commits
// from inside its callback has that commit delivered after the current
// round finishes rather than recursively.
func (o *Observable[S]) Update(mutate func(s *S) bool) (S, bool) {
	o.lock.Lock()
	next := o.state
	if !mutate(&next) {
		current := o.state
		o.lock.Unlock()
		return current, false
	}
	o.state = next
	o.pending = append(o.pending, next)
	if o.draining {
		o.lock.Unlock()
		return next, true
	}
	o.draining = true
	o.lock.Unlock()

	o.drain()
	return next, true
}

func (o *Observable[S]) drain() {
	finished := false
	defer func() {
		// a panicking subscriber must not wedge later commits
		if !finished {
			o.lock.Lock()
			o.draining = false
			o.pending = nil
			o.lock.Unlock()
		}
	}()
	for {
		o.lock.Lock()
		if len(o.pending) == 0 {
			o.draining = false
			o.lock.Unlock()
			finished = true
			return
		}
		state := o.pending[0]
		o.pending = o.pending[1:]
		subs := o.subs
		o.lock.Unlock()

		for _, sub := range subs {
			sub.fn(state)
		}
	}
}
