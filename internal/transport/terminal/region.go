package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const _clearScreen = "\033[H\033[2J"

// Region redraws the whole widget output on every replacement.
type Region struct {
	mu     sync.Mutex
	w      io.Writer
	clear  bool
	prompt string
}

type RegionOption func(*Region)

// WithClear clears the screen before each redraw.
func WithClear(clear bool) RegionOption {
	return func(r *Region) {
		r.clear = clear
	}
}

// WithPrompt is written after the content so the user can type the next identifier.
func WithPrompt(prompt string) RegionOption {
	return func(r *Region) {
		r.prompt = prompt
	}
}

func NewRegion(w io.Writer, opts ...RegionOption) *Region {
	r := &Region{w: w}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Region) Replace(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clear {
		_, _ = io.WriteString(r.w, _clearScreen)
	}
	_, _ = io.WriteString(r.w, content)
	if r.prompt != "" {
		_, _ = io.WriteString(r.w, r.prompt)
	}
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
