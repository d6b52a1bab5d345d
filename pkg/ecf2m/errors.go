package ecf2m

import "errors"

var (
	// ErrSessionClosed reports an operation on a session after Close, or a
	// second Close.
	ErrSessionClosed = errors.New("ecf2m: session is closed")

	// ErrInvalidHandle reports a point handle that is unknown, was already
	// disposed, or belongs to another session. The original native contract
	// made this undefined behavior; here it is a checked error.
	ErrInvalidHandle = errors.New("ecf2m: point handle is invalid or already disposed")

	// ErrUnknownCurve reports a curve value without registered domain
	// parameters.
	ErrUnknownCurve = errors.New("ecf2m: unknown curve")
)
