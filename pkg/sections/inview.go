package sections

// InView is a one-shot visibility trigger. It fires the first time its
// section crosses the viewport shrunk by Margin lines at each edge, and
// never re-arms.
type InView struct {
	id     string
	margin int
	fired  bool
}

// NewInView returns a trigger for section id.
func NewInView(id string, margin int) *InView {
	return &InView{id: id, margin: max(margin, 0)}
}

// ID returns the watched section id.
func (v *InView) ID() string { return v.id }

// Fired reports whether the trigger has fired.
func (v *InView) Fired() bool { return v.fired }

// Check evaluates the trigger for a viewport at offset with height rows.
// It returns true only on the call that fires it.
func (v *InView) Check(loc Locator, offset, height int) bool {
	if v.fired || height <= 0 {
		return false
	}
	span, ok := loc.Locate(v.id)
	if !ok {
		return false
	}
	margin := min(v.margin, (height-1)/2)
	visible := Span{Start: offset + margin, End: offset + height - margin}
	if !span.Intersects(visible) {
		return false
	}
	v.fired = true
	return true
}
