// Package filters holds the dashboard's filter inputs and turns them into
// task query parameters.
//
// Free-text search is debounced: every edit restarts a single 500ms timer and
// only the value standing when the timer fires reaches the query, so typing
// does not issue one fetch per keystroke. Status and priority changes, and
// Reset, propagate immediately. The package holds no server data.
package filters

import (
	"sync"
	"time"

	"taskboard/models"
)

// searchDebounce is how long search input must be quiet before it propagates.
const searchDebounce = 500 * time.Millisecond

// All is the default value for the status and priority selectors.
const All = "all"

// Filters is the process-wide filter state. The onChange callback receives
// the query params after every effective change.
type Filters struct {
	mu               sync.Mutex
	search           string // raw input, not yet propagated
	debouncedSearch  string // value the query uses
	status           string
	priority         string
	createDialogOpen bool
	timer            *time.Timer

	onChange func(models.QueryParams)
}

// New creates filter state with everything at its default.
func New(onChange func(models.QueryParams)) *Filters {
	return &Filters{
		status:   All,
		priority: All,
		onChange: onChange,
	}
}

// SetSearch records a search edit and restarts the debounce timer.
func (f *Filters) SetSearch(q string) {
	f.mu.Lock()
	f.search = q
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(searchDebounce, func() {
		f.mu.Lock()
		f.debouncedSearch = f.search
		params := f.queryLocked()
		f.mu.Unlock()
		f.emit(params)
	})
	f.mu.Unlock()
}

// SetStatus changes the status filter and propagates immediately.
func (f *Filters) SetStatus(status string) {
	f.mu.Lock()
	f.status = status
	params := f.queryLocked()
	f.mu.Unlock()
	f.emit(params)
}

// SetPriority changes the priority filter and propagates immediately.
func (f *Filters) SetPriority(priority string) {
	f.mu.Lock()
	f.priority = priority
	params := f.queryLocked()
	f.mu.Unlock()
	f.emit(params)
}

// Reset restores every filter to its default synchronously. A pending search
// timer is discarded rather than left to fire with stale input.
func (f *Filters) Reset() {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.search = ""
	f.debouncedSearch = ""
	f.status = All
	f.priority = All
	params := f.queryLocked()
	f.mu.Unlock()
	f.emit(params)
}

// Query returns the params the task list should be fetched with.
func (f *Filters) Query() models.QueryParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queryLocked()
}

// Search returns the raw search input, for echoing back into the form.
func (f *Filters) Search() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.search
}

// Status returns the current status selector value.
func (f *Filters) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Priority returns the current priority selector value.
func (f *Filters) Priority() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.priority
}

// SetCreateDialogOpen toggles the create-task dialog flag.
func (f *Filters) SetCreateDialogOpen(open bool) {
	f.mu.Lock()
	f.createDialogOpen = open
	f.mu.Unlock()
}

// CreateDialogOpen reports whether the create-task dialog is showing.
func (f *Filters) CreateDialogOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createDialogOpen
}

// queryLocked builds params from the propagated values, dropping the "all"
// placeholders so the server sees only real filters.
func (f *Filters) queryLocked() models.QueryParams {
	p := models.QueryParams{Search: f.debouncedSearch}
	if f.status != All && f.status != "" {
		p.Status = f.status
	}
	if f.priority != All && f.priority != "" {
		p.Priority = f.priority
	}
	return p
}

func (f *Filters) emit(params models.QueryParams) {
	if f.onChange != nil {
		f.onChange(params)
	}
}
