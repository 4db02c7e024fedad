package feed

import (
	"context"
	"sync"
)

// StartFunc opens a live subscription for a key and returns its
// cancellation handle.
type StartFunc func(key string) context.CancelFunc

// Reconciler owns the set of live subscriptions for a view. Instead of
// ad-hoc registries of listeners, the view declares the full key set it
// wants (for a report month, one key per date) and the reconciler diffs:
// removed keys are cancelled, new keys are started, unchanged keys keep
// their existing subscription untouched.
type Reconciler struct {
	mu     sync.Mutex
	start  StartFunc
	active map[string]context.CancelFunc
}

func NewReconciler(start StartFunc) *Reconciler {
	return &Reconciler{
		start:  start,
		active: make(map[string]context.CancelFunc),
	}
}

// Reconcile moves the active set to exactly desired. It reports which
// keys were added and removed.
func (r *Reconciler) Reconcile(desired []string) (added, removed []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := make(map[string]struct{}, len(desired))
	for _, key := range desired {
		want[key] = struct{}{}
	}

	for key, cancel := range r.active {
		if _, ok := want[key]; !ok {
			cancel()
			delete(r.active, key)
			removed = append(removed, key)
		}
	}

	for key := range want {
		if _, ok := r.active[key]; ok {
			continue
		}
		r.active[key] = r.start(key)
		added = append(added, key)
	}
	return added, removed
}

// Keys returns the currently subscribed key set.
func (r *Reconciler) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.active))
	for key := range r.active {
		keys = append(keys, key)
	}
	return keys
}

// Close cancels every live subscription; used on view teardown.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, cancel := range r.active {
		cancel()
		delete(r.active, key)
	}
}
