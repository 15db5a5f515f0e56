package flexchrome

// ============================================================================
// Render
// ============================================================================

// RenderInput is everything the caption button visuals depend on.
type RenderInput struct {
	MacStyle bool
	State    WindowState
	// Hover is the button under the pointer, or ButtonNone.
	Hover ButtonID
	// AlwaysShowGlyphs keeps the macOS hover glyphs visible without a
	// pointer over the group.
	AlwaysShowGlyphs bool
}

// ButtonVisual is the drawn state of one caption button.
type ButtonVisual struct {
	Glyph   Glyph
	Tooltip string
	Hovered bool
}

// Visuals is the drawn state of the whole caption button area. Exactly one
// of MacSetVisible and WindowsSetVisible is true.
type Visuals struct {
	MacSetVisible     bool
	WindowsSetVisible bool

	Minimize ButtonVisual
	Maximize ButtonVisual
	Close    ButtonVisual
}

// Button returns the visual for id. ButtonNone yields the zero value.
func (v Visuals) Button(id ButtonID) ButtonVisual {
	switch id {
	case ButtonMinimize:
		return v.Minimize
	case ButtonMaximize:
		return v.Maximize
	case ButtonClose:
		return v.Close
	default:
		return ButtonVisual{}
	}
}

// Render maps the chrome state to button visuals. It has no side effects.
func Render(in RenderInput) Visuals {
	maximized := in.State == StateMaximized

	v := Visuals{
		MacSetVisible:     in.MacStyle,
		WindowsSetVisible: !in.MacStyle,
	}
	v.Minimize.Tooltip = TooltipMinimize
	v.Close.Tooltip = TooltipClose
	v.Maximize.Tooltip = TooltipMaximize
	if maximized {
		v.Maximize.Tooltip = TooltipRestore
	}

	if in.MacStyle {
		// Hovering any traffic light reveals the glyphs on all three.
		group := in.Hover != ButtonNone || in.AlwaysShowGlyphs
		v.Minimize.Hovered = group
		v.Maximize.Hovered = group
		v.Close.Hovered = group

		if group {
			v.Close.Glyph = GlyphMacCloseHover
			v.Minimize.Glyph = GlyphMacMinimizeHover
			v.Maximize.Glyph = GlyphMacMaximizeExpandHover
			if maximized {
				v.Maximize.Glyph = GlyphMacMaximizeContractHover
			}
		} else {
			v.Close.Glyph = GlyphMacCloseNormal
			v.Minimize.Glyph = GlyphMacMinimizeNormal
			v.Maximize.Glyph = GlyphMacMaximizeNormal
		}
		return v
	}

	v.Minimize.Hovered = in.Hover == ButtonMinimize
	v.Maximize.Hovered = in.Hover == ButtonMaximize
	v.Close.Hovered = in.Hover == ButtonClose

	v.Minimize.Glyph = pick(v.Minimize.Hovered, GlyphWinMinimizeHover, GlyphWinMinimizeNormal)
	v.Close.Glyph = pick(v.Close.Hovered, GlyphWinCloseHover, GlyphWinCloseNormal)
	if maximized {
		v.Maximize.Glyph = pick(v.Maximize.Hovered, GlyphWinRestoreHover, GlyphWinRestoreNormal)
	} else {
		v.Maximize.Glyph = pick(v.Maximize.Hovered, GlyphWinMaximizeHover, GlyphWinMaximizeNormal)
	}
	return v
}

func pick(cond bool, a, b Glyph) Glyph {
	if cond {
		return a
	}
	return b
}

// ============================================================================
// Bridge
// ============================================================================

// ButtonLayout holds the screen rectangles of the Windows/Linux caption
// buttons after a layout pass.
type ButtonLayout struct {
	Minimize Rect
	Maximize Rect
	Close    Rect
}

// Bridge keeps the drawn caption buttons in sync with window state, style
// and hover. It never mutates the window.
//
// A Bridge is confined to the UI thread and does no locking.
type Bridge struct {
	macStyle   bool
	state      WindowState
	alwaysShow bool

	pointerHover ButtonID // from ordinary pointer enter/leave
	forcedHover  bool     // maximize hover reported by the OS hit-test

	layout  ButtonLayout
	laidOut bool

	visuals   Visuals
	listeners []func(Visuals)
}

// NewBridge creates a bridge showing the given style and state.
func NewBridge(macStyle bool, state WindowState, alwaysShowGlyphs bool) *Bridge {
	b := &Bridge{
		macStyle:   macStyle,
		state:      Normalize(state),
		alwaysShow: alwaysShowGlyphs,
	}
	b.visuals = Render(b.input())
	return b
}

// OnChange registers fn to be called with the new visuals whenever they
// change.
func (b *Bridge) OnChange(fn func(Visuals)) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

// Visuals returns the current visuals.
func (b *Bridge) Visuals() Visuals {
	return b.visuals
}

// MacStyle reports whether the macOS button set is the visible one.
func (b *Bridge) MacStyle() bool {
	return b.macStyle
}

// WindowState returns the state the bridge last rendered.
func (b *Bridge) WindowState() WindowState {
	return b.state
}

// HoverTarget returns the effective hovered button.
func (b *Bridge) HoverTarget() ButtonID {
	if b.forcedHover {
		return ButtonMaximize
	}
	return b.pointerHover
}

// SetStyle swaps the visible button set. Pointer hover belonged to the
// set being hidden and is dropped. OS-reported maximize hover only exists
// for the Windows set and is dropped when the macOS set takes over.
func (b *Bridge) SetStyle(macStyle bool) {
	if b.macStyle == macStyle {
		return
	}
	b.macStyle = macStyle
	b.pointerHover = ButtonNone
	if macStyle {
		b.forcedHover = false
	}
	b.refresh()
}

// SetWindowState records a new window state.
func (b *Bridge) SetWindowState(state WindowState) {
	b.state = Normalize(state)
	b.refresh()
}

// SetAlwaysShowGlyphs toggles the permanent macOS hover glyphs.
func (b *Bridge) SetAlwaysShowGlyphs(enable bool) {
	b.alwaysShow = enable
	b.refresh()
}

// PointerEnter marks id as hovered by the pointer.
func (b *Bridge) PointerEnter(id ButtonID) {
	b.pointerHover = id
	b.refresh()
}

// PointerLeave clears pointer hover if it is still on id.
func (b *Bridge) PointerLeave(id ButtonID) {
	if b.pointerHover != id {
		return
	}
	b.pointerHover = ButtonNone
	b.refresh()
}

// SetMaximizeHover forces the maximize hover visual without a pointer
// event. It reflects hover the OS detected in non-client space, where
// ordinary pointer events never arrive.
func (b *Bridge) SetMaximizeHover(hover bool) {
	if b.forcedHover == hover {
		return
	}
	b.forcedHover = hover
	b.refresh()
}

// Layout records the screen rectangles of the Windows/Linux buttons.
func (b *Bridge) Layout(l ButtonLayout) {
	b.layout = l
	b.laidOut = !l.Maximize.Empty()
}

// ClearLayout forgets the button rectangles, e.g. while the window is
// being re-laid out.
func (b *Bridge) ClearLayout() {
	b.layout = ButtonLayout{}
	b.laidOut = false
}

// MaximizeButtonBounds returns the maximize button's screen rectangle.
// ok is false before the first layout and while the macOS set is shown.
func (b *Bridge) MaximizeButtonBounds() (Rect, bool) {
	if b.macStyle || !b.laidOut {
		return Rect{}, false
	}
	return b.layout.Maximize, true
}

// ButtonAt returns the Windows/Linux button containing the screen point.
func (b *Bridge) ButtonAt(x, y int) ButtonID {
	if b.macStyle || !b.laidOut {
		return ButtonNone
	}
	switch {
	case b.layout.Minimize.Contains(x, y):
		return ButtonMinimize
	case b.layout.Maximize.Contains(x, y):
		return ButtonMaximize
	case b.layout.Close.Contains(x, y):
		return ButtonClose
	}
	return ButtonNone
}

func (b *Bridge) input() RenderInput {
	return RenderInput{
		MacStyle:         b.macStyle,
		State:            b.state,
		Hover:            b.HoverTarget(),
		AlwaysShowGlyphs: b.alwaysShow,
	}
}

func (b *Bridge) refresh() {
	v := Render(b.input())
	if v == b.visuals {
		return
	}
	b.visuals = v
	for _, fn := range b.listeners {
		fn(v)
	}
}
