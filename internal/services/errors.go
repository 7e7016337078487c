package services

import "errors"

// ErrorKind buckets submission failures. Handlers map kinds to client-facing
// messages; the underlying error text stays in the server logs.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindConfig
	KindAuth
	KindSheetNotFound
	KindBackend
)

// ClientMessage is the generic text returned to API clients for this kind.
func (k ErrorKind) ClientMessage() string {
	switch k {
	case KindValidation:
		return "validation failed"
	case KindConfig:
		return "server configuration error"
	case KindAuth:
		return "failed to authenticate with the spreadsheet backend"
	case KindSheetNotFound:
		return "order worksheet not found"
	default:
		return "failed to submit order"
	}
}

type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
