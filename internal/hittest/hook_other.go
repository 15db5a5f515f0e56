//go:build !windows

package hittest

// Hook is a subclassed window procedure. Hosts other than Windows never
// produce one.
type Hook struct {
	released bool
}

// Install always fails with ErrUnsupported outside Windows.
func Install(hwnd uintptr, ic *Interceptor) (*Hook, error) {
	return nil, ErrUnsupported
}

// Release is a no-op.
func (h *Hook) Release() error {
	if h != nil {
		h.released = true
	}
	return nil
}

// Released reports whether Release has been called.
func (h *Hook) Released() bool {
	return h != nil && h.released
}
