package api

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// historyDefinition pins the /chat/history response shape so a misbehaving
// server surfaces as a parse failure rather than silently hydrating garbage.
var historyDefinition = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "message", "reply"},
		"properties": map[string]any{
			"id":      map[string]any{"type": "string"},
			"message": map[string]any{"type": "string"},
			"reply":   map[string]any{"type": "string"},
		},
	},
}

var (
	historyOnce     sync.Once
	historyCompiled *jsonschema.Schema
)

func historySchema() *jsonschema.Schema {
	historyOnce.Do(func() {
		historyCompiled = mustCompile("chat-history", historyDefinition)
	})
	return historyCompiled
}

// mustCompile compiles an inline schema definition. Definitions are package
// constants, so a failure here is a programming error.
func mustCompile(name string, definition map[string]any) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, definition); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return compiled
}
