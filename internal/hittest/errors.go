package hittest

import "errors"

var (
	// ErrUnsupported is returned by Install on hosts without Win32
	// window procedures.
	ErrUnsupported = errors.New("hittest: window subclassing not supported on this platform")

	// ErrNoHandle is returned when the window has no native handle yet.
	ErrNoHandle = errors.New("hittest: window has no native handle")
)
