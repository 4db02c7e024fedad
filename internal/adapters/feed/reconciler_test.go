package feed

import (
	"context"
	"sort"
	"sync"
	"testing"
)

type startRecorder struct {
	mu        sync.Mutex
	started   map[string]int
	cancelled map[string]int
}

func newStartRecorder() *startRecorder {
	return &startRecorder{
		started:   make(map[string]int),
		cancelled: make(map[string]int),
	}
}

func (s *startRecorder) start(key string) context.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started[key]++
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.cancelled[key]++
	}
}

func TestReconcileDiffs(t *testing.T) {
	recorder := newStartRecorder()
	r := NewReconciler(recorder.start)

	added, removed := r.Reconcile([]string{"2025-03-01", "2025-03-02", "2025-03-03"})
	if len(added) != 3 || len(removed) != 0 {
		t.Fatalf("initial reconcile: added %v removed %v", added, removed)
	}

	// Switch the window: drop 01, keep 02/03, add 04.
	added, removed = r.Reconcile([]string{"2025-03-02", "2025-03-03", "2025-03-04"})
	sort.Strings(added)
	sort.Strings(removed)
	if len(added) != 1 || added[0] != "2025-03-04" {
		t.Fatalf("expected only the new key added, got %v", added)
	}
	if len(removed) != 1 || removed[0] != "2025-03-01" {
		t.Fatalf("expected only the dropped key removed, got %v", removed)
	}

	if recorder.started["2025-03-02"] != 1 || recorder.started["2025-03-03"] != 1 {
		t.Fatalf("unchanged keys must not resubscribe: %v", recorder.started)
	}
	if recorder.cancelled["2025-03-01"] != 1 {
		t.Fatalf("dropped key must be cancelled exactly once: %v", recorder.cancelled)
	}
	if recorder.cancelled["2025-03-02"] != 0 {
		t.Fatalf("kept key must not be cancelled: %v", recorder.cancelled)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	recorder := newStartRecorder()
	r := NewReconciler(recorder.start)

	keys := []string{"a", "b"}
	r.Reconcile(keys)
	added, removed := r.Reconcile(keys)
	if len(added) != 0 || len(removed) != 0 {
		t.Fatalf("same key set must be a no-op, added %v removed %v", added, removed)
	}
	if recorder.started["a"] != 1 || recorder.started["b"] != 1 {
		t.Fatalf("keys resubscribed: %v", recorder.started)
	}
}

func TestReconcileToEmpty(t *testing.T) {
	recorder := newStartRecorder()
	r := NewReconciler(recorder.start)

	r.Reconcile([]string{"a", "b"})
	_, removed := r.Reconcile(nil)
	if len(removed) != 2 {
		t.Fatalf("expected everything removed, got %v", removed)
	}
	if len(r.Keys()) != 0 {
		t.Fatalf("expected empty active set, got %v", r.Keys())
	}
}

func TestClose(t *testing.T) {
	recorder := newStartRecorder()
	r := NewReconciler(recorder.start)

	r.Reconcile([]string{"a", "b", "c"})
	r.Close()

	for _, key := range []string{"a", "b", "c"} {
		if recorder.cancelled[key] != 1 {
			t.Fatalf("close must cancel %s exactly once: %v", key, recorder.cancelled)
		}
	}
	if len(r.Keys()) != 0 {
		t.Fatalf("expected empty active set after close, got %v", r.Keys())
	}
}
