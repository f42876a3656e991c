// Package apierror provides the standardized error model for the API.
// Services return *apierror.Error values classified by Kind; handlers map the
// Kind to an HTTP status and serialize the canonical {"error": "..."} envelope
// so that internal details (stack traces, DB errors) never reach clients.
package apierror

import "errors"

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	// KindValidation covers malformed or out-of-range input (400).
	KindValidation Kind = iota
	// KindUniqueness covers duplicate key/name or duplicate producto-proveedor pairs (400).
	KindUniqueness
	// KindReferential covers deletes blocked by dependent rows (400).
	KindReferential
	// KindNotFound covers unknown ids (404).
	KindNotFound
)

// Error is a classified, client-safe domain error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) *Error  { return &Error{Kind: KindValidation, Msg: msg} }
func Uniqueness(msg string) *Error  { return &Error{Kind: KindUniqueness, Msg: msg} }
func Referential(msg string) *Error { return &Error{Kind: KindReferential, Msg: msg} }
func NotFound(msg string) *Error    { return &Error{Kind: KindNotFound, Msg: msg} }

// KindOf extracts the Kind of err, reporting ok=false for unclassified errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Envelope is the canonical error response body.
type Envelope struct {
	Error string `json:"error"`
}

func NewEnvelope(msg string) Envelope { return Envelope{Error: msg} }
