//go:build !darwin || ios

package flexchrome

func defaultNativeButtons(uintptr) (NativeButtons, error) {
	return nil, nil
}
