package flexchrome

import "strings"

// Glyph names one caption button icon. The value doubles as the asset path
// stem, e.g. "macos/close-hover" resolves to "icons/macos/close-hover.svg".
type Glyph string

// macOS traffic-light glyphs.
const (
	GlyphMacCloseNormal           Glyph = "macos/close-normal"
	GlyphMacCloseHover            Glyph = "macos/close-hover"
	GlyphMacMinimizeNormal        Glyph = "macos/minimize-normal"
	GlyphMacMinimizeHover         Glyph = "macos/minimize-hover"
	GlyphMacMaximizeNormal        Glyph = "macos/maximize-normal"
	GlyphMacMaximizeExpandHover   Glyph = "macos/maximize-expand-hover"
	GlyphMacMaximizeContractHover Glyph = "macos/maximize-contract-hover"
)

// Windows/Linux caption glyphs.
const (
	GlyphWinMinimizeNormal Glyph = "winos/minimize-normal"
	GlyphWinMinimizeHover  Glyph = "winos/minimize-hover"
	GlyphWinMaximizeNormal Glyph = "winos/maximize-normal"
	GlyphWinMaximizeHover  Glyph = "winos/maximize-hover"
	GlyphWinRestoreNormal  Glyph = "winos/restore-normal"
	GlyphWinRestoreHover   Glyph = "winos/restore-hover"
	GlyphWinCloseNormal    Glyph = "winos/close-normal"
	GlyphWinCloseHover     Glyph = "winos/close-hover"
)

// Asset returns the icon path relative to the asset root.
func (g Glyph) Asset() string {
	return "icons/" + string(g) + ".svg"
}

// IsHover reports whether g is one of the hover variants.
func (g Glyph) IsHover() bool {
	return strings.HasSuffix(string(g), "-hover")
}

// Tooltip text for the caption buttons.
const (
	TooltipMinimize = "Minimize"
	TooltipMaximize = "Maximize"
	TooltipRestore  = "Restore"
	TooltipClose    = "Close"
)
