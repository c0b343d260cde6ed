package backend

import (
	"context"
	"errors"
	"net"
	"os"
)

var (
	// ErrUnavailable covers transport failures and 5xx responses. Callers
	// must treat it as absence of proof, never as a confirmed outcome.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrRejected covers 4xx responses: the backend understood the request
	// and refused it.
	ErrRejected = errors.New("backend rejected request")
)

// IsTimeout reports whether the error is a client-side deadline rather than
// a backend verdict. Money movement is never declared failed on a timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
