// Package dispatch adapts the late-bound automation interface of the WellCAD
// host application to Go.
//
// An [Object] is the raw automation surface of one host-side object. A
// [Handle] is a non-owning reference to an Object: it forwards member reads,
// writes and calls verbatim, performs the "flag as method" registration the
// host requires for ambiguous member names, and wraps returned host objects in
// child handles. A Handle never releases the object it refers to; the host
// governs its lifetime, and a Handle must not be used after the host
// invalidates the underlying document.
//
// Handles are not safe for concurrent use. The host expects single-threaded
// apartment access, so callers sharing a Handle across goroutines must
// serialise access themselves.
package dispatch

import "errors"

// DefaultProgID is the automation class registered by the WellCAD installer.
const DefaultProgID = "WellCAD.Application"

var (
	// ErrNotObject is returned when a member expected to yield a host object
	// returned a plain value instead.
	ErrNotObject = errors.New("dispatch: result is not an automation object")
	// ErrUnexpectedType is returned by the typed readers when the host value
	// cannot be represented as the requested Go type.
	ErrUnexpectedType = errors.New("dispatch: unexpected value type")
	// ErrNilObject is returned when a Handle has no underlying object.
	ErrNilObject = errors.New("dispatch: nil automation object")
	// ErrUnsupportedPlatform is returned by Connect on platforms without COM.
	ErrUnsupportedPlatform = errors.New("dispatch: COM automation is only available on windows")
)

// Object is the late-bound automation surface of one host object.
//
// Values passed to and returned from an Object are plain Go values (string,
// bool, integer and floating point kinds, nil) or other Objects.
type Object interface {
	Get(member string) (any, error)
	Put(member string, value any) error
	Call(member string, args ...any) (any, error)
	// FlagAsMethod marks member as a method so that subsequent calls are not
	// resolved as property reads.
	FlagAsMethod(member string) error
}
