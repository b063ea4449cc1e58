package spindle

import "github.com/arvheim/spindle/input"

// Handlers are the optional application callbacks the event translator
// raises. Install them with Loop.SetHandlers before Run; every handler
// runs on the loop thread.
type Handlers struct {
	KeyDown      func(key input.Key)
	KeyUp        func(key input.Key)
	TextInput    func(r rune, key input.Key)
	FileDrop     func(path string)
	Resize       func(width, height int)
	Moved        func(x, y int, display string)
	FocusChanged func(active bool)
}

// Window is the loop's view of the native window. Methods that reach the
// native layer are loop-thread only; use Loop.Post from elsewhere.
type Window struct {
	b       backend
	title   string
	width   int
	height  int
	display string
}

func newWindow(cfg WindowConfig, b backend) *Window {
	w := &Window{
		b:      b,
		title:  cfg.Title,
		width:  cfg.Width,
		height: cfg.Height,
	}
	// The native layer may have adjusted the requested size.
	if bw, bh := b.size(); bw > 0 && bh > 0 {
		w.width, w.height = bw, bh
	}
	return w
}

// Title returns the current window title.
func (w *Window) Title() string { return w.title }

// SetTitle renames the window.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.b.setTitle(title)
}

// Size returns the last observed client size.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Display names the display the window currently occupies, refreshed
// whenever the window moves. Empty when unknown.
func (w *Window) Display() string { return w.display }

// ClipboardText reads the system clipboard.
func (w *Window) ClipboardText() (string, error) { return w.b.clipboardText() }

// SetClipboardText replaces the system clipboard contents.
func (w *Window) SetClipboardText(text string) error { return w.b.setClipboardText(text) }

// HasClipboardText reports whether the clipboard holds a non-empty string.
func (w *Window) HasClipboardText() bool { return w.b.hasClipboardText() }

func (w *Window) resized(width, height int) {
	w.width, w.height = width, height
}

func (w *Window) refreshDisplay() {
	w.display = w.b.displayName()
}
