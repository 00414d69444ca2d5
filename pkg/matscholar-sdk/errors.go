package matscholar

import "fmt"

// Kind classifies an Error so callers can branch without string matching.
type Kind int

const (
	// KindConfig marks failures before any network call, e.g. a missing API key.
	KindConfig Kind = iota + 1
	// KindTransport marks HTTP-level failures: connection errors and
	// unexpected status codes.
	KindTransport
	// KindEnvelope marks a well-formed envelope with valid_response=false;
	// Message carries the service's error string verbatim.
	KindEnvelope
	// KindDecode marks a body or payload that failed to parse as JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindEnvelope:
		return "envelope"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every Client operation. Catch it
// with errors.As and inspect Kind when the cause matters.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int    // HTTP status of the failing response, 0 when not applicable
	Body       string // raw response content, when available

	cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s. Content: %s", msg, e.Body)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}
