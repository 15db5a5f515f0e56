//go:build !windows

package hittest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallUnsupported(t *testing.T) {
	ic, _, _ := newFixture()

	h, err := Install(0x1234, ic)

	require.ErrorIs(t, err, ErrUnsupported)
	assert.Nil(t, h)
	assert.False(t, ic.Detached())
}

func TestReleaseNilHook(t *testing.T) {
	var h *Hook
	assert.NoError(t, h.Release())
	assert.False(t, h.Released())
}
