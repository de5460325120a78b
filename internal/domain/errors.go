package domain

import "errors"

// Domain errors.
var (
	// ErrMissingURL is returned when no reel URL was supplied.
	ErrMissingURL = errors.New("missing reel URL")

	// ErrInvalidReelURL is returned when the reel URL does not match the accepted pattern.
	ErrInvalidReelURL = errors.New("invalid reel URL")

	// ErrHTMLResponse is returned when the metadata API serves an HTML page instead of JSON.
	ErrHTMLResponse = errors.New("upstream returned an HTML page")

	// ErrMalformedMetadata is returned when the metadata API response is not a JSON object.
	ErrMalformedMetadata = errors.New("upstream response is not a JSON object")

	// ErrPayloadTooLarge is returned when the video exceeds MaxPayloadBytes.
	ErrPayloadTooLarge = errors.New("video exceeds size limit")

	// ErrNotVideo is returned when the fetched payload is not video media.
	ErrNotVideo = errors.New("content type is not video")
)

// ErrorKind classifies a pipeline failure for status-code mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindResolution
	KindFetch
	KindInternal
)

// Error tags a failure with the pipeline stage that produced it, so
// the HTTP boundary can map each kind to exactly one status code
// regardless of how the underlying failure was signaled.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a tagged pipeline error.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
