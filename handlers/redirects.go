package handlers

import "sync"

// Redirects is the Navigator the gateway and session manager drive. It records
// where the UI currently is and where a side effect wants it to go next; the
// handler finishing the request turns a pending target into an HTTP redirect.
type Redirects struct {
	mu      sync.Mutex
	current string
	pending string
}

// NewRedirects creates an empty redirect tracker.
func NewRedirects() *Redirects {
	return &Redirects{}
}

// SetCurrent records the path of the request being handled.
func (r *Redirects) SetCurrent(path string) {
	r.mu.Lock()
	r.current = path
	r.mu.Unlock()
}

// CurrentPath reports where the UI currently is.
func (r *Redirects) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Goto requests a redirect. A later Goto during the same request wins.
func (r *Redirects) Goto(path string) {
	r.mu.Lock()
	r.pending = path
	r.mu.Unlock()
}

// Consume returns the pending target, if any, and clears it.
func (r *Redirects) Consume() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	path := r.pending
	r.pending = ""
	return path, path != ""
}
