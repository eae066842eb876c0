// Package tools exposes the resume pipeline and the skill matcher as MCP
// tools for external agents.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jumptake/backend/apperror"
)

// Tool is one callable capability. Execute reports input and domain
// problems inside the returned Result; a non-nil error means the call itself
// broke.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]interface{}
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// Definition describes a tool to clients.
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolRegistry holds the tools by name. Registering a name twice replaces
// the earlier tool.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

func (r *ToolRegistry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	list := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		list = append(list, tool)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Definitions describes every tool, sorted by name.
func (r *ToolRegistry) Definitions() []Definition {
	list := r.List()
	defs := make([]Definition, 0, len(list))
	for _, tool := range list {
		defs = append(defs, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return defs
}

// Call runs the named tool. Unknown names are NotFound.
func (r *ToolRegistry) Call(ctx context.Context, name string, input json.RawMessage) (json.RawMessage, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, apperror.Newf(apperror.NotFound, "tool not found: %s", name)
	}
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}
	return tool.Execute(ctx, input)
}

// Result is the envelope every tool returns.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Success wraps data in a successful Result.
func Success(data interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return json.Marshal(Result{Success: true, Data: payload})
}

// Failure reports a tool-level problem to the caller.
func Failure(format string, args ...interface{}) (json.RawMessage, error) {
	return json.Marshal(Result{Error: fmt.Sprintf(format, args...)})
}
