//go:build darwin && !ios

// Package cocoa drives the NSWindow standard window buttons (the traffic
// lights) through the Objective-C runtime, without cgo.
package cocoa

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

const appKitPath = "/System/Library/Frameworks/AppKit.framework/AppKit"

// NSWindowButton values.
const (
	closeButton       = 0
	miniaturizeButton = 1
	zoomButton        = 2
)

var (
	loadOnce sync.Once
	loadErr  error

	selStandardWindowButton objc.SEL
	selSetHidden            objc.SEL
	selIsHidden             objc.SEL
)

// load makes AppKit's classes visible to the runtime and caches selectors.
func load() error {
	loadOnce.Do(func() {
		if _, err := purego.Dlopen(appKitPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err != nil {
			loadErr = fmt.Errorf("failed to load AppKit: %w", err)
			return
		}
		selStandardWindowButton = objc.RegisterName("standardWindowButton:")
		selSetHidden = objc.RegisterName("setHidden:")
		selIsHidden = objc.RegisterName("isHidden")
	})
	return loadErr
}

// Buttons controls the three standard buttons of one NSWindow.
type Buttons struct {
	window objc.ID
}

// NewButtons wraps an NSWindow pointer.
func NewButtons(nsWindow uintptr) (*Buttons, error) {
	if nsWindow == 0 {
		return nil, errors.New("cocoa: nil NSWindow")
	}
	if err := load(); err != nil {
		return nil, err
	}
	return &Buttons{window: objc.ID(nsWindow)}, nil
}

func (b *Buttons) each(fn func(button objc.ID)) {
	for _, kind := range []int{closeButton, miniaturizeButton, zoomButton} {
		button := b.window.Send(selStandardWindowButton, kind)
		if button != 0 {
			fn(button)
		}
	}
}

// SetVisible shows or hides all three standard buttons.
func (b *Buttons) SetVisible(visible bool) error {
	b.each(func(button objc.ID) {
		button.Send(selSetHidden, !visible)
	})
	return nil
}

// Visible reports whether any standard button is currently shown.
func (b *Buttons) Visible() (bool, error) {
	visible := false
	b.each(func(button objc.ID) {
		if !objc.Send[bool](button, selIsHidden) {
			visible = true
		}
	})
	return visible, nil
}
