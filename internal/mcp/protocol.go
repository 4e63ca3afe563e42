// internal/mcp/protocol.go
// Struktur dasar pemanggilan tool (dari model ke handler in-process)

package mcp

import "encoding/json"

type ToolRequest struct {
	CallID string          `json:"call_id,omitempty"`
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ToolError: body error standar dari handler tool
type ToolError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
