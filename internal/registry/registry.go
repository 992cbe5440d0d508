package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tasknet/taskrt/internal/protocol"
	"github.com/tasknet/taskrt/internal/task"
)

var (
	ErrEntryNil     = errors.New("registry: entry has nil make function")
	ErrDuplicateUID = errors.New("registry: uid already registered")
	ErrFrozen       = errors.New("registry: registry is frozen")
)

// Entry is one uid -> constructor/destructor route.
type Entry struct {
	UID     protocol.UID
	Make    task.Constructor
	Destroy func(task.Hooks)
}

// Registry is a uid-keyed, sorted-by-uid table of task routes. It is built
// once at application startup either from a fixed list via New, or
// incrementally via Register followed by Freeze.
type Registry struct {
	mu     sync.RWMutex
	byUID  map[protocol.UID]Entry
	sorted []protocol.UID
	frozen bool
}

// NewEmpty returns a Registry with no entries, open for Register calls.
func NewEmpty() *Registry {
	return &Registry{byUID: make(map[protocol.UID]Entry)}
}

// New builds a Registry from a fixed entry list and freezes it
// immediately — the compile-time-list composition style.
func New(entries []Entry) (*Registry, error) {
	r := NewEmpty()
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	r.Freeze()
	return r, nil
}

// Register adds one entry. It rejects a nil Make, a uid already present,
// and any call made after Freeze.
func (r *Registry) Register(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return ErrFrozen
	}
	if e.Make == nil {
		return ErrEntryNil
	}
	if _, exists := r.byUID[e.UID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateUID, e.UID)
	}
	r.byUID[e.UID] = e
	idx := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] >= e.UID })
	r.sorted = append(r.sorted, 0)
	copy(r.sorted[idx+1:], r.sorted[idx:])
	r.sorted[idx] = e.UID
	return nil
}

// Freeze closes the registry to further Register calls. Freeze is
// idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Find looks up uid via binary search (lower_bound) on the sorted index.
// A miss returns the zero Entry and false.
func (r *Registry) Find(uid protocol.UID) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] >= uid })
	if idx == len(r.sorted) || r.sorted[idx] != uid {
		return Entry{}, false
	}
	return r.byUID[uid], true
}

// List returns every registered uid in sorted order.
func (r *Registry) List() []protocol.UID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]protocol.UID, len(r.sorted))
	copy(out, r.sorted)
	return out
}
