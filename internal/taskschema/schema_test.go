package taskschema

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSchema(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func TestLoadValidSchema(t *testing.T) {
	path := writeSchema(t, `{
		"tasks": {
			"blink": {"uid": 1, "params": {"period_ms": "u16"}, "return": {}},
			"report": {"uid": "200", "params": {}, "return": {"status": "u8"}}
		}
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(s.Tasks))
	}
	if s.Tasks["report"].UID != 200 {
		t.Fatalf("expected string uid to decode to 200, got %d", s.Tasks["report"].UID)
	}
}

func TestLoadRejectsEmptySchema(t *testing.T) {
	path := writeSchema(t, `{"tasks": {}}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected empty schema to be rejected")
	}
}

func TestLoadRejectsMissingKey(t *testing.T) {
	path := writeSchema(t, `{
		"tasks": {
			"blink": {"uid": 1, "params": {}}
		}
	}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected task missing 'return' to be rejected")
	}
}

func TestLoadRejectsNonIntegerUID(t *testing.T) {
	path := writeSchema(t, `{
		"tasks": {
			"blink": {"uid": "not-a-number", "params": {}, "return": {}}
		}
	}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unparseable string uid to be rejected")
	}
}

func TestTaskUIDWidthPicksNarrowest(t *testing.T) {
	cases := []struct {
		maxUID uint64
		want   UIDWidth
	}{
		{0, Width8},
		{0xff, Width8},
		{0x100, Width16},
		{0xffff, Width16},
		{0x10000, Width32},
		{0xffff_ffff, Width32},
		{0x1_0000_0000, Width64},
	}
	for _, c := range cases {
		s := Schema{Tasks: map[string]TaskDef{"t": {UID: c.maxUID}}}
		got, err := s.TaskUIDWidth()
		if err != nil {
			t.Fatalf("uid width for %#x: %v", c.maxUID, err)
		}
		if got != c.want {
			t.Fatalf("uid %#x: want width %d, got %d", c.maxUID, c.want, got)
		}
	}
}

func TestTaskUIDWidthUsesMaxAcrossTasks(t *testing.T) {
	s := Schema{Tasks: map[string]TaskDef{
		"a": {UID: 3},
		"b": {UID: 0x1234},
		"c": {UID: 7},
	}}
	got, err := s.TaskUIDWidth()
	if err != nil {
		t.Fatalf("uid width: %v", err)
	}
	if got != Width16 {
		t.Fatalf("expected width16 from max uid 0x1234, got %d", got)
	}
}

func TestSortedNames(t *testing.T) {
	s := Schema{Tasks: map[string]TaskDef{
		"zeta": {UID: 1},
		"alpha": {UID: 2},
		"mu":    {UID: 3},
	}}
	names := s.SortedNames()
	if len(names) != 3 || names[0] != "alpha" || names[1] != "mu" || names[2] != "zeta" {
		t.Fatalf("expected sorted [alpha mu zeta], got %v", names)
	}
}
