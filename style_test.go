package flexchrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		style     PlatformStyle
		hostIsMac bool
		want      bool
	}{
		{"auto on mac", StyleAuto, true, true},
		{"auto elsewhere", StyleAuto, false, false},
		{"macos on mac", StyleMacOS, true, true},
		{"macos elsewhere", StyleMacOS, false, true},
		{"windows on mac", StyleWindows, true, false},
		{"windows elsewhere", StyleWindows, false, false},
		{"linux on mac", StyleLinux, true, false},
		{"linux elsewhere", StyleLinux, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.style, tt.hostIsMac))
			if tt.style != StyleAuto {
				assert.Equal(t, tt.style == StyleMacOS, Resolve(tt.style, tt.hostIsMac),
					"explicit styles ignore the host")
			}
		})
	}
}

func TestParsePlatformStyle(t *testing.T) {
	tests := []struct {
		in   string
		want PlatformStyle
	}{
		{"", StyleAuto},
		{"auto", StyleAuto},
		{"Windows", StyleWindows},
		{" mac ", StyleMacOS},
		{"macos", StyleMacOS},
		{"LINUX", StyleLinux},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatformStyle(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePlatformStyle("beos")
	assert.Error(t, err)
}

func TestPlatformStyleText(t *testing.T) {
	var s PlatformStyle
	require.NoError(t, s.UnmarshalText([]byte("linux")))
	assert.Equal(t, StyleLinux, s)

	text, err := StyleMacOS.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "macos", string(text))

	assert.Error(t, s.UnmarshalText([]byte("amiga")))
	assert.Equal(t, StyleLinux, s, "failed unmarshal leaves the value untouched")
}
