package tasklist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tableflip.dev/todo/pkg/task"
)

const schemaURL = "todo://schemas/tasks.json"

// tasksSchema describes the stored value: an array of task objects.
const tasksSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "done"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "text": {"type": "string", "pattern": "\\S"},
      "dueDate": {"type": "string", "format": "date"},
      "done": {"type": "boolean"}
    }
  }
}`

var schema = compileSchema()

func compileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(tasksSchema)); err != nil {
		panic(fmt.Sprintf("tasklist: add schema: %v", err))
	}
	s, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("tasklist: compile schema: %v", err))
	}
	return s
}

// Encode serializes tasks in order. A nil slice encodes as an empty array.
func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return json.Marshal(tasks)
}

// Decode parses a stored value. Any invalid entry fails the whole decode with
// an error wrapping ErrStorageCorrupt.
func Decode(data []byte) ([]task.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageCorrupt, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageCorrupt, err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageCorrupt, err)
	}

	seen := make(map[task.ID]struct{}, len(tasks))
	for i := range tasks {
		if _, dup := seen[tasks[i].ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrStorageCorrupt, tasks[i].ID)
		}
		seen[tasks[i].ID] = struct{}{}
	}
	return tasks, nil
}
