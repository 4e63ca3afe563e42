// internal/mcp/registry.go
// Registri mapping nama tool -> handler

package mcp

import (
	"net/http"
	"sort"
	"sync"
)

type Registry struct {
	mu   sync.RWMutex
	data map[string]http.Handler
}

func NewRegistry() *Registry {
	return &Registry{data: make(map[string]http.Handler)}
}

// Register mendaftarkan handler untuk sebuah tool; nama yang sama ditimpa.
func (r *Registry) Register(name string, h http.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[name] = h
}

func (r *Registry) RegisterFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	r.Register(name, http.HandlerFunc(fn))
}

func (r *Registry) Get(name string) (http.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.data[name]
	return h, ok
}

// List mengembalikan nama tool terurut
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Serve mengeksekusi handler tool 'name', 404 jika tidak terdaftar.
func (r *Registry) Serve(w http.ResponseWriter, req *http.Request, name string) {
	if h, ok := r.Get(name); ok {
		h.ServeHTTP(w, req)
		return
	}
	WriteToolError(w, http.StatusNotFound, "tool_not_found", "tool not found: "+name)
}
