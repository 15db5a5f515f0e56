//go:build darwin && !ios

package flexchrome

import "github.com/agiangrant/flexchrome/internal/cocoa"

// defaultNativeButtons wraps the NSWindow behind handle.
func defaultNativeButtons(handle uintptr) (NativeButtons, error) {
	b, err := cocoa.NewButtons(handle)
	if err != nil {
		return nil, err
	}
	return b, nil
}
