package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

func testStyles(t *testing.T) Styles {
	t.Helper()
	canvas := theme.NewCanvas(lipgloss.NewRenderer(io.Discard), theme.Get(theme.DefaultName))
	canvas.Apply(theme.Dark)
	return NewStyles(canvas)
}

func allRevealed() map[string]bool {
	m := make(map[string]bool)
	for _, id := range sections.IDs() {
		m[id] = true
	}
	return m
}

func testState(t *testing.T, cols int) State {
	t.Helper()
	c := content.Default()
	class := viewport.Classify(cols * viewport.DefaultCellWidth)
	var jobs []content.Job
	for _, j := range c.Experience.Items {
		if j.Category == content.CategoryLeadership {
			jobs = append(jobs, j)
		}
	}
	return State{
		Content:  c,
		Styles:   testStyles(t),
		Class:    class,
		Width:    cols,
		Rows:     30,
		Revealed: allRevealed(),
		Subtitles: map[string]Typed{
			sections.Experience: {Text: c.Experience.Subtitle, Full: c.Experience.Subtitle},
		},
		Category: content.CategoryLeadership,
		Jobs:     jobs,
		Year:     2026,
	}
}

func sectionText(p Page, id string) string {
	span := p.Spans[id]
	lines := strings.Split(p.Body, "\n")
	return strings.Join(lines[span.Start:span.End], "\n")
}

func TestRenderSpansCoverPage(t *testing.T) {
	for _, cols := range []int{60, 100, 140, 200} {
		page := Render(testState(t, cols))
		if got := len(strings.Split(page.Body, "\n")); got != page.Height {
			t.Fatalf("cols=%d: body has %d lines, Height=%d", cols, got, page.Height)
		}
		next := 0
		for _, id := range sections.IDs() {
			span, ok := page.Spans.Locate(id)
			if !ok {
				t.Fatalf("cols=%d: section %s not located", cols, id)
			}
			if span.Start != next || span.Height() <= 0 {
				t.Errorf("cols=%d: %s span = %+v, want start %d", cols, id, span, next)
			}
			next = span.End
		}
		if next != page.Height {
			t.Errorf("cols=%d: spans end at %d, page height %d", cols, next, page.Height)
		}
	}
}

func TestRenderFitsWidth(t *testing.T) {
	for _, cols := range []int{40, 80, 130, 180} {
		page := Render(testState(t, cols))
		for i, l := range strings.Split(page.Body, "\n") {
			if w := components.VisibleLen(l); w > cols {
				t.Errorf("cols=%d line %d is %d wide: %q", cols, i, w, ansi.Strip(l))
			}
		}
	}
}

func TestRenderFullHeightSections(t *testing.T) {
	st := testState(t, 100)
	page := Render(st)
	for _, id := range []string{sections.Home, sections.About} {
		if span := page.Spans[id]; span.Height() < st.Rows {
			t.Errorf("%s height = %d, want at least %d", id, span.Height(), st.Rows)
		}
	}
}

func TestRenderTailRows(t *testing.T) {
	st := testState(t, 60)
	st.Rows = 18
	st.TailRows = sections.DefaultBand.Reach(st.Rows)
	page := Render(st)
	last := sections.IDs()[len(sections.IDs())-1]
	if span := page.Spans[last]; span.Height() < st.TailRows {
		t.Errorf("%s height = %d, want at least %d", last, span.Height(), st.TailRows)
	}

	// At the maximum offset the band must land inside the last section.
	offset := max(page.Height-st.Rows, 0)
	band := sections.DefaultBand.Region(offset, st.Rows)
	if !page.Spans[last].Intersects(band) {
		t.Errorf("band %+v misses %s %+v at offset %d", band, last, page.Spans[last], offset)
	}
}

func TestRenderEmpty(t *testing.T) {
	if p := Render(State{}); p.Height != 0 || len(p.Spans) != 0 {
		t.Errorf("Render(zero) = %+v", p)
	}
}

func TestTypedReservesHeight(t *testing.T) {
	st := testState(t, 80)
	full := st.Content.Experience.Subtitle
	done := Render(st)

	st.Subtitles[sections.Experience] = Typed{Text: "", Full: full, Caret: true}
	typing := Render(st)
	if typing.Height != done.Height {
		t.Errorf("height while typing = %d, done = %d", typing.Height, done.Height)
	}
	if !strings.Contains(sectionText(typing, sections.Experience), "▌") {
		t.Error("caret missing while typing")
	}
	if strings.Contains(sectionText(done, sections.Experience), "▌") {
		t.Error("caret shown after typing finished")
	}
}

func TestCarouselCardStableHeight(t *testing.T) {
	st := testState(t, 100)
	if len(st.Jobs) < 2 {
		t.Skip("default content needs two leadership jobs")
	}
	first := Render(st)
	st.JobIndex = 1
	second := Render(st)
	if first.Height != second.Height {
		t.Errorf("page height changed with card: %d vs %d", first.Height, second.Height)
	}
	if !strings.Contains(second.Body, st.Jobs[1].Title) {
		t.Errorf("second card title %q not rendered", st.Jobs[1].Title)
	}
	if !strings.Contains(second.Body, "2/") {
		t.Error("card position indicator missing")
	}
}

func TestExperienceEmptyCategory(t *testing.T) {
	st := testState(t, 100)
	st.Category = content.CategoryTech
	st.Jobs = nil
	if !strings.Contains(Render(st).Body, "Nothing here yet.") {
		t.Error("empty category message missing")
	}
}

func TestProjectFilter(t *testing.T) {
	st := testState(t, 120)
	var featured, other string
	for _, p := range st.Content.Projects.Items {
		if p.Featured && featured == "" {
			featured = p.Title
		}
		if !p.Featured && other == "" {
			other = p.Title
		}
	}
	st.Filter = content.FilterFeatured
	body := Render(st).Body
	if !strings.Contains(body, featured) || strings.Contains(body, other) {
		t.Errorf("featured filter: want %q shown and %q hidden", featured, other)
	}
	st.Filter = content.FilterOther
	body = Render(st).Body
	if strings.Contains(body, featured) || !strings.Contains(body, other) {
		t.Errorf("other filter: want %q shown and %q hidden", other, featured)
	}
}

func TestRenderMarksZones(t *testing.T) {
	st := testState(t, 120)
	seen := make(map[string]bool)
	st.Mark = func(id, s string) string {
		seen[id] = true
		return s
	}
	Render(st)
	for _, id := range []string{
		ZoneWork, ZoneContact, ZoneDown,
		ZoneCategory + content.CategoryTech,
		ZoneFilter + "featured",
		ZoneCard + "0",
		ZoneLink + "0",
	} {
		if !seen[id] {
			t.Errorf("zone %q not marked", id)
		}
	}
}

func TestRenderHyperlinks(t *testing.T) {
	st := testState(t, 100)
	st.Hyperlinks = true
	if !strings.Contains(Render(st).Body, "\x1b]8;") {
		t.Error("expected OSC 8 hyperlinks")
	}
	st.Hyperlinks = false
	if strings.Contains(Render(st).Body, "\x1b]8;") {
		t.Error("unexpected OSC 8 hyperlinks")
	}
}

func TestContainer(t *testing.T) {
	w, left := Container(200, viewport.Large.Metrics())
	if w != 144 || left != 28 {
		t.Errorf("Container(200, large) = %d, %d", w, left)
	}
	w, left = Container(60, viewport.Mobile.Metrics())
	if w != 56 || left != 2 {
		t.Errorf("Container(60, mobile) = %d, %d", w, left)
	}
	w, _ = Container(10, viewport.Mobile.Metrics())
	if w != 10 {
		t.Errorf("Container(10) width = %d, want 10", w)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		class viewport.Class
		items int
		want  int
	}{
		{viewport.Mobile, 6, 1},
		{viewport.Tablet, 6, 2},
		{viewport.Desktop, 6, 3},
		{viewport.Large, 2, 2},
		{viewport.Large, 0, 1},
	}
	for _, tt := range tests {
		if got := Columns(tt.class, tt.items); got != tt.want {
			t.Errorf("Columns(%v, %d) = %d, want %d", tt.class, tt.items, got, tt.want)
		}
	}
}

func TestRenderNav(t *testing.T) {
	sty := testStyles(t)
	n := NavState{Brand: "Sam Rivera", Active: sections.Skills, ThemeLabel: "SYSTEM (DARK)", Class: viewport.Desktop, Width: 120}
	line := ansi.Strip(RenderNav(n, sty))
	for _, want := range []string{"Home", "Skills", "Contact", "SYSTEM (DARK)", "Sam Rivera"} {
		if !strings.Contains(line, want) {
			t.Errorf("nav missing %q: %q", want, line)
		}
	}
	if w := components.VisibleLen(line); w > 120 {
		t.Errorf("nav width = %d", w)
	}

	n.Class = viewport.Mobile
	n.Width = 40
	line = ansi.Strip(RenderNav(n, sty))
	if strings.Contains(line, "Home") || !strings.Contains(line, "Skills") {
		t.Errorf("mobile nav = %q, want only the active section", line)
	}
	if w := components.VisibleLen(line); w > 40 {
		t.Errorf("mobile nav width = %d", w)
	}
}

func TestTooltipSide(t *testing.T) {
	if TooltipSide(110, 120) != SideLeft {
		t.Error("toolkit on the right should open its tooltip left")
	}
	if TooltipSide(5, 120) != SideRight {
		t.Error("toolkit on the left should open its tooltip right")
	}
	if TooltipSide(5, 0) != SideRight {
		t.Error("unknown width defaults to right")
	}
}

func TestRenderToolkit(t *testing.T) {
	sty := testStyles(t)
	closed := ansi.Strip(RenderToolkit(ToolkitState{Hover: -1}, sty, SideLeft))
	if !strings.Contains(closed, "✦") || strings.Contains(closed, "♥") {
		t.Errorf("closed toolkit = %q", closed)
	}

	open := ansi.Strip(RenderToolkit(ToolkitState{Open: true, Hover: 1}, sty, SideLeft))
	if !strings.Contains(open, "♥") || !strings.Contains(open, "Support") {
		t.Errorf("open toolkit = %q", open)
	}
	lines := strings.Split(open, "\n")
	if idx := strings.Index(lines[2], "Support"); idx < 0 || idx > strings.Index(lines[2], "♥") {
		t.Errorf("tooltip should sit left of the button: %q", lines[2])
	}

	audio := ansi.Strip(RenderToolkit(ToolkitState{Open: true, Audio: true, Hover: 2}, sty, SideRight))
	if !strings.Contains(audio, "Audio: on") {
		t.Errorf("audio tooltip = %q", audio)
	}
}

func TestOverlay(t *testing.T) {
	base := "aaaaaaaa\nbbbbbbbb\ncccccccc"
	got := ansi.Strip(Overlay(base, "XY\nZW", 3, 1))
	want := "aaaaaaaa\nbbbXYbbb\ncccZWccc"
	if got != want {
		t.Errorf("Overlay = %q, want %q", got, want)
	}
	clipped := ansi.Strip(Overlay("abc", "XY\nZW", 1, 0))
	if clipped != "aXY" {
		t.Errorf("clipped Overlay = %q", clipped)
	}
}

func TestCorner(t *testing.T) {
	x, y := Corner(100, 30, 10, 5, 1, false)
	if x != 89 || y != 24 {
		t.Errorf("Corner right = %d,%d", x, y)
	}
	x, _ = Corner(100, 30, 10, 5, 1, true)
	if x != 1 {
		t.Errorf("Corner left x = %d", x)
	}
}

func TestFadedUsesDim(t *testing.T) {
	sty := testStyles(t)
	f := sty.Faded()
	if f.Heading.GetForeground() != sty.Dim.GetForeground() {
		t.Error("faded heading should use the dim colour")
	}
	if !f.Heading.GetBold() {
		t.Error("faded heading keeps its weight")
	}
}
