// taskschemagen validates a JSON task-definition file and reports the
// narrowest uid integer width a device built against it would need.
//
// Grounded on original_source/tools/src/schema/{schema,device_based_schema,
// subsystem_based_schema,task_only_schema,custom_schema}.py: that pack
// exposes one abstract Schema plus four near-identical subclasses
// differing only in their default JSON path. -kind plays that role here
// as a default-path selector rather than four Go types, since the
// subclasses in the original add no behavior beyond the path constant.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tasknet/taskrt/internal/taskschema"
)

func defaultPath(kind string) string {
	switch kind {
	case "device":
		return "schema/device_based_schema.json"
	case "subsystem":
		return "schema/subsystem_based_schema.json"
	case "task-only":
		return "schema/task_only_schema.json"
	case "custom":
		return "schema/custom_schema.json"
	default:
		return ""
	}
}

func main() {
	kind := flag.String("kind", "task-only", "schema kind: device|subsystem|task-only|custom (selects the default -input path)")
	input := flag.String("input", "", "task-definition JSON path (defaults to the -kind's default path)")
	flag.Parse()

	path := *input
	if path == "" {
		path = defaultPath(*kind)
		if path == "" {
			log.Fatalf("unknown kind: %s", *kind)
		}
	}

	s, err := taskschema.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	width, err := s.TaskUIDWidth()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Validated %s: %d task(s), uid width uint%d\n", path, len(s.Tasks), width)
	for _, name := range s.SortedNames() {
		t := s.Tasks[name]
		fmt.Printf("  %-20s uid=%-6d params=%d return=%d\n", name, t.UID, len(t.Params), len(t.Return))
	}
}
