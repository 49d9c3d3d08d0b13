// Package sections tracks which page section is under the trigger band
// of the scroll window.
//
// The page is a single column of sections, each occupying a span of
// rendered lines. An Observer keeps one watcher per section; on every
// scroll each watcher re-evaluates whether its span crosses the band and
// reports state changes. An intersecting report makes that section the
// active one. Reports may arrive in any order and the most recent
// intersecting report always wins.
package sections

import "log/slog"

// Section ids in page order.
const (
	Home       = "home"
	About      = "about"
	Experience = "experience"
	Projects   = "projects"
	Skills     = "skills"
	Contact    = "contact"
)

// IDs returns the section ids in page order.
func IDs() []string {
	return []string{Home, About, Experience, Projects, Skills, Contact}
}

// Span is a half-open range of page lines [Start, End).
type Span struct {
	Start int
	End   int
}

// Height returns the number of lines in the span.
func (s Span) Height() int { return s.End - s.Start }

// Contains reports whether line falls inside the span.
func (s Span) Contains(line int) bool { return line >= s.Start && line < s.End }

// Intersects reports whether s and o share at least one line.
func (s Span) Intersects(o Span) bool { return s.Start < o.End && o.Start < s.End }

// Locator finds the rendered span of a section.
type Locator interface {
	Locate(id string) (Span, bool)
}

// Spans is a Locator backed by a map.
type Spans map[string]Span

// Locate implements Locator.
func (m Spans) Locate(id string) (Span, bool) {
	s, ok := m[id]
	return s, ok
}

// Band is the trigger region expressed as margins trimmed from the top
// and bottom of the viewport, as fractions of its height.
type Band struct {
	Top    float64
	Bottom float64
}

// DefaultBand is the line 20% down from the top of the viewport.
var DefaultBand = Band{Top: 0.20, Bottom: 0.80}

// Valid reports whether both margins are within [0,1] and leave the band
// inside the viewport.
func (b Band) Valid() bool {
	return b.Top >= 0 && b.Bottom >= 0 && b.Top+b.Bottom <= 1
}

// Region returns the band's page lines for a viewport at offset with
// height rows. A band collapsed to zero height still covers one line.
func (b Band) Region(offset, height int) Span {
	top := offset + int(float64(height)*b.Top)
	bottom := offset + height - int(float64(height)*b.Bottom)
	if bottom <= top {
		bottom = top + 1
	}
	return Span{Start: top, End: bottom}
}

// Reach returns the lines from the band's top edge to the bottom of a
// viewport of height rows. The last section of a page must be at least
// this tall to reach the band at the maximum scroll offset.
func (b Band) Reach(height int) int {
	if height <= 0 {
		return 0
	}
	return height - int(float64(height)*b.Top)
}

// DefaultScrolledThreshold is the scroll offset, in lines, past which the
// page counts as scrolled.
const DefaultScrolledThreshold = 3

type watcher struct {
	id           string
	span         Span
	intersecting bool
}

// Observer tracks the active section.
type Observer struct {
	ids       []string
	band      Band
	threshold int
	log       *slog.Logger
	onChange  func(id string)

	watchers  []*watcher
	byID      map[string]*watcher
	connected bool
	active    string
	scrolled  bool
}

// Option configures an Observer.
type Option func(*Observer)

// WithBand overrides the trigger band.
func WithBand(b Band) Option {
	return func(o *Observer) { o.band = b }
}

// WithScrolledThreshold overrides the scrolled threshold in lines.
func WithScrolledThreshold(lines int) Option {
	return func(o *Observer) { o.threshold = lines }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Observer) { o.log = l }
}

// OnChange registers fn to be called whenever the active section changes.
func OnChange(fn func(id string)) Option {
	return func(o *Observer) { o.onChange = fn }
}

// NewObserver returns an observer for ids. The first id is active until
// a watcher reports.
func NewObserver(ids []string, opts ...Option) *Observer {
	o := &Observer{
		ids:       append([]string(nil), ids...),
		band:      DefaultBand,
		threshold: DefaultScrolledThreshold,
		log:       slog.Default(),
		byID:      make(map[string]*watcher),
	}
	if len(ids) > 0 {
		o.active = ids[0]
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Observe attaches one watcher per id that loc can find. Ids without a
// span are skipped. Observing again replaces the watchers, keeping the
// intersection state of sections that are still present.
func (o *Observer) Observe(loc Locator) {
	prev := o.byID
	o.watchers = o.watchers[:0]
	o.byID = make(map[string]*watcher, len(o.ids))
	for _, id := range o.ids {
		span, ok := loc.Locate(id)
		if !ok {
			o.log.Debug("section not rendered, not observed", "id", id)
			continue
		}
		w := &watcher{id: id, span: span}
		if old, ok := prev[id]; ok {
			w.intersecting = old.intersecting
		}
		o.watchers = append(o.watchers, w)
		o.byID[id] = w
	}
	o.connected = true
}

// Scroll re-evaluates every watcher for a viewport at offset with height
// rows. Watchers whose state changed report in page order.
func (o *Observer) Scroll(offset, height int) {
	if !o.connected {
		return
	}
	o.scrolled = offset > o.threshold
	if height <= 0 {
		return
	}
	region := o.band.Region(offset, height)
	for _, w := range o.watchers {
		in := w.span.Intersects(region)
		if in != w.intersecting {
			o.Report(w.id, in)
		}
	}
}

// Report delivers an intersection change for id. Reports for unknown ids
// or after Disconnect are ignored.
func (o *Observer) Report(id string, intersecting bool) {
	if !o.connected {
		return
	}
	w, ok := o.byID[id]
	if !ok {
		return
	}
	w.intersecting = intersecting
	if !intersecting || o.active == id {
		return
	}
	o.active = id
	if o.onChange != nil {
		o.onChange(id)
	}
}

// Disconnect releases every watcher. Later scrolls and reports are
// ignored until Observe is called again.
func (o *Observer) Disconnect() {
	o.connected = false
	o.watchers = nil
	o.byID = make(map[string]*watcher)
}

// Active returns the active section id.
func (o *Observer) Active() string { return o.active }

// Scrolled reports whether the last scroll offset passed the threshold.
func (o *Observer) Scrolled() bool { return o.scrolled }

// Band returns the trigger band.
func (o *Observer) Band() Band { return o.band }

// Watching returns the number of attached watchers.
func (o *Observer) Watching() int { return len(o.watchers) }

// Connected reports whether the observer is attached.
func (o *Observer) Connected() bool { return o.connected }
