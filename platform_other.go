//go:build !darwin || ios

package flexchrome

func detectDarwinPlatform() Platform {
	return PlatformUnknown
}
