package widget

import "sync"

//go:generate mockgen -source=region.go -destination=mock/region.go -package=mock_widget

// Region is the single output area of the widget. Every call replaces the whole content.
type Region interface {
	Replace(content string)
}

// Renderer turns a display state into region content.
type Renderer interface {
	Render(s State) (string, error)
}

// BufferRegion keeps the latest content in memory.
type BufferRegion struct {
	mu       sync.RWMutex
	content  string
	revision uint64
}

func NewBufferRegion() *BufferRegion {
	return &BufferRegion{}
}

func (r *BufferRegion) Replace(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
	r.revision++
}

func (r *BufferRegion) Content() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content
}

// Revision counts replacements, so pollers can tell whether the region changed.
func (r *BufferRegion) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}
