package host

import (
	"context"
	"sync"
)

// MemoryHost keeps the data directory in memory. Err, when set, is returned
// by SetDataDirectory instead of storing anything.
type MemoryHost struct {
	Window Window
	Err    error

	mu      sync.Mutex
	dataDir string
	writes  []string
}

var _ Host = (*MemoryHost)(nil)

func NewMemoryHost(title string) *MemoryHost {
	return &MemoryHost{Window: Window{Title: title}}
}

func (h *MemoryHost) MainWindow() Window {
	return h.Window
}

func (h *MemoryHost) SetDataDirectory(ctx context.Context, path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Err != nil {
		return h.Err
	}
	h.dataDir = path
	h.writes = append(h.writes, path)
	return nil
}

func (h *MemoryHost) DataDirectory() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dataDir
}

// Writes lists every path passed to SetDataDirectory, in order
func (h *MemoryHost) Writes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.writes))
	copy(out, h.writes)
	return out
}
