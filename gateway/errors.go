package gateway

import "strings"

// Kind classifies a failed request into the categories the UI reacts to.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAuthExpired is a 401: the credential was rejected.
	KindAuthExpired
	// KindForbidden is a 403.
	KindForbidden
	// KindNotFound is a 404.
	KindNotFound
	// KindConflict is a 409.
	KindConflict
	// KindValidation is a 400 or 422, possibly with per-field messages.
	KindValidation
	// KindServerFault is a 500.
	KindServerFault
	// KindNetwork means no response was received at all.
	KindNetwork
)

// Error is the classified failure the gateway hands back to callers.
// Message is already user-facing; ServerMessage keeps whatever the server
// said verbatim so auth forms can render their own contextual text; Cause
// keeps the transport error when one exists.
type Error struct {
	Kind          Kind
	Status        int
	Message       string
	ServerMessage string
	FieldErrors   []string
	Cause         error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by kind so callers can use errors.Is with a sentinel
// like &Error{Kind: KindAuthExpired}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// classify maps a response status and decoded envelope onto an Error.
// The fallback messages mirror what the dashboard shows when the server
// supplies nothing usable.
func classify(status int, serverMessage string, fieldErrors []string) *Error {
	e := &Error{Status: status, ServerMessage: serverMessage, FieldErrors: fieldErrors}
	switch status {
	case 401:
		e.Kind = KindAuthExpired
		e.Message = "Session expired. Please login again"
	case 403:
		e.Kind = KindForbidden
		e.Message = fallback(serverMessage, "Access denied")
	case 404:
		e.Kind = KindNotFound
		e.Message = fallback(serverMessage, "Resource not found")
	case 409:
		e.Kind = KindConflict
		e.Message = fallback(serverMessage, "Conflict - Resource already exists")
	case 400, 422:
		e.Kind = KindValidation
		if len(fieldErrors) > 0 {
			e.Message = strings.Join(fieldErrors, ", ")
		} else {
			e.Message = fallback(serverMessage, "An unexpected error occurred")
		}
	case 500:
		e.Kind = KindServerFault
		e.Message = "Server error. Please try again later"
	default:
		e.Kind = KindUnknown
		e.Message = fallback(serverMessage, "An unexpected error occurred")
	}
	return e
}

func fallback(message, alt string) string {
	if message != "" {
		return message
	}
	return alt
}
