// Package viewport classifies the terminal into breakpoint buckets and
// keeps that classification current across resizes.
//
// Widths are measured in pixels so the same breakpoints work for every
// font size: the terminal's reported pixel width is used when available,
// otherwise columns times an assumed cell width.
package viewport

// Class is a breakpoint bucket derived from viewport width.
type Class int

const (
	// Mobile is narrower than Breakpoints.Tablet.
	Mobile Class = iota
	// Tablet is at least Breakpoints.Tablet and narrower than Desktop.
	Tablet
	// Desktop is at least Breakpoints.Desktop and narrower than Large.
	Desktop
	// Large is at least Breakpoints.Large.
	Large
)

var classNames = [...]string{
	Mobile:  "mobile",
	Tablet:  "tablet",
	Desktop: "desktop",
	Large:   "large",
}

// String returns the lowercase class name.
func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Breakpoints holds the minimum pixel width of each class above Mobile.
type Breakpoints struct {
	Tablet  int
	Desktop int
	Large   int
}

// DefaultBreakpoints returns 640/1024/1280.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Tablet: 640, Desktop: 1024, Large: 1280}
}

// Classify buckets width against the breakpoints.
func (b Breakpoints) Classify(width int) Class {
	switch {
	case width < b.Tablet:
		return Mobile
	case width < b.Desktop:
		return Tablet
	case width < b.Large:
		return Desktop
	default:
		return Large
	}
}

// Valid reports whether the breakpoints are positive and strictly
// increasing.
func (b Breakpoints) Valid() bool {
	return b.Tablet > 0 && b.Tablet < b.Desktop && b.Desktop < b.Large
}

// Classify buckets width against DefaultBreakpoints.
func Classify(width int) Class {
	return DefaultBreakpoints().Classify(width)
}

// Metrics is the spacing a class asks of the page layout.
type Metrics struct {
	PadV      int     // blank lines above and below section content
	PadH      int     // columns of horizontal padding
	MaxWidth  int     // container max width in columns, 0 = full width
	MinHeight float64 // section min height as a fraction of viewport rows
}

// Metrics returns the layout spacing for c.
func (c Class) Metrics() Metrics {
	switch c {
	case Mobile:
		return Metrics{PadV: 1, PadH: 2, MaxWidth: 0, MinHeight: 0.80}
	case Tablet:
		return Metrics{PadV: 2, PadH: 3, MaxWidth: 112, MinHeight: 0.85}
	case Desktop:
		return Metrics{PadV: 3, PadH: 4, MaxWidth: 128, MinHeight: 0.90}
	default:
		return Metrics{PadV: 4, PadH: 6, MaxWidth: 144, MinHeight: 0.90}
	}
}

// SectionMinHeight returns the minimum number of rows a section occupies
// in a viewport of the given height. Full-height sections fill the
// viewport.
func (c Class) SectionMinHeight(rows int, fullHeight bool) int {
	if rows <= 0 {
		return 0
	}
	if fullHeight {
		return rows
	}
	return int(float64(rows) * c.Metrics().MinHeight)
}
