package flexchrome

// StateSink receives normalized window states.
type StateSink func(WindowState)

// Observer republishes host window state changes to its sinks.
type Observer struct {
	sinks       []StateSink
	unsubscribe func()
	attached    bool
	current     WindowState
}

// NewObserver creates an observer that feeds the given sinks.
func NewObserver(sinks ...StateSink) *Observer {
	o := &Observer{}
	for _, s := range sinks {
		o.AddSink(s)
	}
	return o
}

// AddSink registers another receiver. Sinks added after Attach receive the
// current state immediately.
func (o *Observer) AddSink(s StateSink) {
	if s == nil {
		return
	}
	o.sinks = append(o.sinks, s)
	if o.attached {
		s(o.current)
	}
}

// Attach subscribes to win and emits its current state once so sinks start
// consistent even if no transition ever follows.
func (o *Observer) Attach(win Window) {
	o.Detach()
	o.unsubscribe = win.Subscribe(func(c StateChange) {
		o.emit(c.New)
	})
	o.attached = true
	o.emit(win.State())
}

// Detach removes the subscription. It is safe to call more than once.
func (o *Observer) Detach() {
	if !o.attached {
		return
	}
	if o.unsubscribe != nil {
		o.unsubscribe()
	}
	o.unsubscribe = nil
	o.attached = false
}

// Current returns the last state emitted.
func (o *Observer) Current() WindowState {
	return o.current
}

func (o *Observer) emit(raw WindowState) {
	o.current = Normalize(raw)
	for _, s := range o.sinks {
		s(o.current)
	}
}
