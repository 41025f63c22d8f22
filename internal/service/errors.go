package service

import "fmt"

type ErrorKind int

const (
	// KindNotFound means a referenced record does not exist.
	KindNotFound ErrorKind = iota
	// KindStorage means the storage layer failed.
	KindStorage
)

// Error is the kinded error services return, so handlers can map outcomes to
// status codes without string matching.
type Error struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("%s not found", e.Subject)
	}
	return fmt.Sprintf("storage error on %s: %v", e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(subject string) *Error {
	return &Error{Kind: KindNotFound, Subject: subject}
}

func storage(subject string, err error) *Error {
	return &Error{Kind: KindStorage, Subject: subject, Err: err}
}
