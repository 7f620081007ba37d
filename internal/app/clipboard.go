package app

import "sync"

// memoryClipboard keeps copied objects inside the editor when the system
// clipboard is disabled.
type memoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *memoryClipboard) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *memoryClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}
