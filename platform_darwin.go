//go:build darwin && !ios

package flexchrome

// detectDarwinPlatform returns macOS on non-iOS darwin builds
func detectDarwinPlatform() Platform {
	return PlatformMacOS
}
