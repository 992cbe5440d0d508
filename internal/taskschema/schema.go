package taskschema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// TaskDef is one entry in a task-definition file: the task's uid plus
// its parameter and return-value signatures (name -> type-name).
type TaskDef struct {
	UID    uint64            `json:"uid"`
	Params map[string]string `json:"params"`
	Return map[string]string `json:"return"`
}

// Schema is a validated task-definition document: a mapping of task
// name to TaskDef, loaded from JSON.
type Schema struct {
	Tasks map[string]TaskDef
}

// Load reads, decodes and validates a task-definition file at path in
// one step. Unlike internal/config, this package has no separate
// Validate entry point for a mapping already decoded in memory.
func Load(path string) (Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("schema load failed (%s): %w", path, err)
	}

	var doc struct {
		Tasks map[string]json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Schema{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if len(doc.Tasks) == 0 {
		return Schema{}, fmt.Errorf("empty schema: %s has no tasks", path)
	}

	tasks := make(map[string]TaskDef, len(doc.Tasks))
	for name, body := range doc.Tasks {
		def, err := decodeTask(name, body)
		if err != nil {
			return Schema{}, err
		}
		tasks[name] = def
	}
	return Schema{Tasks: tasks}, nil
}

func decodeTask(name string, body json.RawMessage) (TaskDef, error) {
	var raw struct {
		UID    json.RawMessage   `json:"uid"`
		Params map[string]string `json:"params"`
		Return map[string]string `json:"return"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return TaskDef{}, fmt.Errorf("task %q: %w", name, err)
	}
	if raw.UID == nil {
		return TaskDef{}, fmt.Errorf("task %q: uid absent", name)
	}
	if raw.Params == nil {
		return TaskDef{}, fmt.Errorf("task %q: params absent", name)
	}
	if raw.Return == nil {
		return TaskDef{}, fmt.Errorf("task %q: return absent", name)
	}

	uid, err := decodeUID(raw.UID)
	if err != nil {
		return TaskDef{}, fmt.Errorf("task %q: %w", name, err)
	}
	return TaskDef{UID: uid, Params: raw.Params, Return: raw.Return}, nil
}

// decodeUID accepts either a JSON number or a numeric string, matching
// the original schema's "uid values must be integers or strings
// representing integers".
func decodeUID(raw json.RawMessage) (uint64, error) {
	var asNumber uint64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		var n uint64
		if _, err := fmt.Sscanf(asString, "%d", &n); err == nil {
			return n, nil
		}
		return 0, fmt.Errorf("unable to convert string uid %q to integer", asString)
	}
	return 0, fmt.Errorf("uid must be an integer or a string representing one")
}

// UIDWidth is the narrowest unsigned integer width, in bits, that fits
// every uid declared in the schema.
type UIDWidth int

const (
	Width8  UIDWidth = 8
	Width16 UIDWidth = 16
	Width32 UIDWidth = 32
	Width64 UIDWidth = 64
)

// TaskUIDWidth returns the narrowest width that fits the maximum uid
// across all tasks in s.
func (s Schema) TaskUIDWidth() (UIDWidth, error) {
	if len(s.Tasks) == 0 {
		return 0, fmt.Errorf("schema has no tasks")
	}
	var max uint64
	for _, t := range s.Tasks {
		if t.UID > max {
			max = t.UID
		}
	}
	switch {
	case max <= 0xff:
		return Width8, nil
	case max <= 0xffff:
		return Width16, nil
	case max <= 0xffff_ffff:
		return Width32, nil
	default:
		return Width64, nil
	}
}

// SortedNames returns the task names in s in sorted order, for
// deterministic reporting.
func (s Schema) SortedNames() []string {
	names := make([]string, 0, len(s.Tasks))
	for name := range s.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
