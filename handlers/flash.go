package handlers

import "sync"

// Notice is one piece of user-visible feedback waiting to be rendered.
type Notice struct {
	Level   string // "success" or "error"
	Message string
}

// Flash collects notifications from the gateway (and handlers) until the next
// page render drains them. It is the web-tier stand-in for toast popups.
type Flash struct {
	mu      sync.Mutex
	notices []Notice
}

// NewFlash creates an empty flash queue.
func NewFlash() *Flash {
	return &Flash{}
}

// Success queues a success notice.
func (f *Flash) Success(message string) {
	f.add("success", message)
}

// Error queues an error notice.
func (f *Flash) Error(message string) {
	f.add("error", message)
}

func (f *Flash) add(level, message string) {
	f.mu.Lock()
	f.notices = append(f.notices, Notice{Level: level, Message: message})
	f.mu.Unlock()
}

// Drain returns the queued notices and clears the queue.
func (f *Flash) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	notices := f.notices
	f.notices = nil
	return notices
}
