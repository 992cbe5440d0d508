package registry

import (
	"sort"
	"testing"

	"github.com/tasknet/taskrt/internal/envelope"
	"github.com/tasknet/taskrt/internal/protocol"
	"github.com/tasknet/taskrt/internal/task"
)

func noopMake(envelope.View) (task.Hooks, error) {
	return task.Base{}, nil
}

func TestFindMatchesLinearScan(t *testing.T) {
	uids := []protocol.UID{50, 10, 30, 20, 40}
	entries := make([]Entry, 0, len(uids))
	for _, u := range uids {
		entries = append(entries, Entry{UID: u, Make: noopMake})
	}
	r, err := New(entries)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, u := range uids {
		route, ok := r.Find(u)
		if !ok || route.UID != u {
			t.Fatalf("find(%d) failed", u)
		}
	}
	if _, ok := r.Find(999); ok {
		t.Fatalf("find on absent uid should miss")
	}
	got := r.List()
	want := append([]protocol.UID{}, uids...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List() not sorted: %v", got)
		}
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	r := NewEmpty()
	if err := r.Register(Entry{UID: 1, Make: noopMake}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register(Entry{UID: 1, Make: noopMake}); err == nil {
		t.Fatalf("expected duplicate uid error")
	}
}

func TestRegisterRejectsAfterFreeze(t *testing.T) {
	r := NewEmpty()
	r.Freeze()
	if err := r.Register(Entry{UID: 1, Make: noopMake}); err != ErrFrozen {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestRegisterRejectsNilMake(t *testing.T) {
	r := NewEmpty()
	if err := r.Register(Entry{UID: 1}); err != ErrEntryNil {
		t.Fatalf("expected ErrEntryNil, got %v", err)
	}
}
