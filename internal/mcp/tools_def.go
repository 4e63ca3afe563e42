// internal/mcp/tools_def.go
package mcp

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

//go:embed mcp-tools.json
var toolsJSON []byte

type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}
type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		toolDefs, toolDefsErr = parseCatalog(toolsJSON)
	})
	return toolDefs, toolDefsErr
}

func parseCatalog(raw []byte) ([]ToolDef, error) {
	var cat ToolCatalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}
	for _, d := range cat.Tools {
		if d.Name == "" || len(d.InputSchema) == 0 {
			return nil, fmt.Errorf("tool catalog entry without name/input_schema: %+v", d)
		}
	}
	return cat.Tools, nil
}

// OpenAITools mengubah katalog menjadi definisi function tool untuk model.
func OpenAITools(defs []ToolDef) []openai.Tool {
	out := make([]openai.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.InputSchema,
			},
		})
	}
	return out
}
