// internal/mcp/exec.go
// Dispatcher: menjalankan tool call dari model secara in-process lewat router mux.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

type ExecResult struct {
	CallID string          `json:"call_id,omitempty"`
	Tool   string          `json:"tool"`
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// OK true untuk status 2xx
func (r ExecResult) OK() bool { return r.Status >= 200 && r.Status < 300 }

type Dispatcher struct {
	reg    *Registry
	router *mux.Router
}

func NewDispatcher(reg *Registry) *Dispatcher {
	d := &Dispatcher{reg: reg, router: mux.NewRouter()}
	d.router.HandleFunc("/tools/{name}", func(w http.ResponseWriter, r *http.Request) {
		reg.Serve(w, r, mux.Vars(r)["name"])
	}).Methods(http.MethodPost)
	return d
}

// Execute menjalankan satu tool call.
// 4xx (argumen salah, tool tidak ada) dikembalikan sebagai hasil agar bisa
// dibaca model; 5xx dianggap kegagalan fatal dan dikembalikan sebagai error.
func (d *Dispatcher) Execute(ctx context.Context, call ToolRequest) (ExecResult, error) {
	name := call.Tool

	// nama dari model tidak dipercaya: hanya tool terdaftar yang boleh sampai ke router
	if _, ok := d.reg.Get(name); !ok {
		msg, _ := json.Marshal(ToolError{Error: "tool_not_found", Message: "tool not found: " + name})
		return ExecResult{CallID: call.CallID, Tool: name, Status: http.StatusNotFound, Body: msg}, nil
	}

	body := []byte("{}")
	if !isJSONNullOrEmpty(call.Params) {
		body = call.Params
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/tools/"+url.PathEscape(name), bytes.NewReader(body))
	if err != nil {
		return ExecResult{}, fmt.Errorf("build tool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	rr := newMemRecorder()
	d.router.ServeHTTP(rr, req)

	res := ExecResult{CallID: call.CallID, Tool: name, Status: rr.status, Body: normalizeBody(rr.buf)}
	if rr.status >= 500 {
		return res, fmt.Errorf("tool %s failed (status %d): %s", name, rr.status, strings.TrimSpace(string(rr.buf)))
	}
	return res, nil
}

// normalizeBody: body non-JSON dibungkus jadi {"error": "..."}
func normalizeBody(b []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return json.RawMessage("{}")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	wrapped, _ := json.Marshal(ToolError{Error: string(trimmed)})
	return wrapped
}

// WriteToolError menulis body error standar (dipakai juga oleh handler tool)
func WriteToolError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ToolError{Error: code, Message: msg})
}

// ---- mini response recorder (in-memory) ----
type memRecorder struct {
	buf    []byte
	status int
	header http.Header
}

func newMemRecorder() *memRecorder { return &memRecorder{header: http.Header{}, status: http.StatusOK} }
func (m *memRecorder) Header() http.Header { return m.header }
func (m *memRecorder) Write(b []byte) (int, error) {
	m.buf = append(m.buf, b...)
	return len(b), nil
}
func (m *memRecorder) WriteHeader(code int) { m.status = code }

func isJSONNullOrEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
