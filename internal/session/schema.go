package session

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// storedDefinition pins the shape of the "user" record in durable storage.
// Only name and email are required; identifiers vary across backend versions.
var storedDefinition = map[string]any{
	"type":     "object",
	"required": []any{"name", "email"},
	"properties": map[string]any{
		"_id":       map[string]any{"type": "string"},
		"userId":    map[string]any{"type": "string"},
		"name":      map[string]any{"type": "string"},
		"email":     map[string]any{"type": "string"},
		"firstName": map[string]any{"type": "string"},
	},
}

// payloadDefinition pins the federated-login redirect payload.
var payloadDefinition = map[string]any{
	"type":     "object",
	"required": []any{"user", "tokens"},
	"properties": map[string]any{
		"user": map[string]any{
			"type":     "object",
			"required": []any{"name", "email"},
		},
		"tokens": map[string]any{
			"type":     "object",
			"required": []any{"access_token", "refresh_token"},
			"properties": map[string]any{
				"access_token":  map[string]any{"type": "string"},
				"refresh_token": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	schemaOnce      sync.Once
	storedCompiled  *jsonschema.Schema
	payloadCompiled *jsonschema.Schema
)

func compileSchemas() {
	storedCompiled = mustCompile("stored-session", storedDefinition)
	payloadCompiled = mustCompile("auth-payload", payloadDefinition)
}

func storedSchema() *jsonschema.Schema {
	schemaOnce.Do(compileSchemas)
	return storedCompiled
}

func payloadSchema() *jsonschema.Schema {
	schemaOnce.Do(compileSchemas)
	return payloadCompiled
}

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
