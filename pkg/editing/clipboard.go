package editing

import "sync"

// Clipboard is the text clipboard used by copy, cut and paste.
type Clipboard interface {
	// ReadText returns the clipboard contents and whether there were any.
	ReadText() (string, bool)
	// WriteText replaces the clipboard contents.
	WriteText(text string)
}

// MemoryClipboard is a process-local Clipboard, shared by every widget it
// is handed to. It is safe for concurrent use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	set  bool
}

// ReadText implements Clipboard.
func (c *MemoryClipboard) ReadText() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.set
}

// WriteText implements Clipboard.
func (c *MemoryClipboard) WriteText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.set = true
}
