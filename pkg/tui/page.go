// Package tui renders the portfolio page: the scrolling body with its
// six sections, the navigation bar, the floating toolkit and the help
// line. Rendering is pure; all animation state is passed in.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

// Zone ids of clickable elements. Prefixed ids take a suffix: a section
// id, a category, a card index or a filter name.
const (
	ZoneNav      = "nav:"
	ZoneCategory = "cat:"
	ZoneCard     = "card:"
	ZoneFilter   = "filter:"
	ZoneLink     = "link:"
	ZoneTheme    = "theme"
	ZoneWork     = "cta:work"
	ZoneContact  = "cta:contact"
	ZoneDown     = "cta:down"
)

// MinWidth is the narrowest container the page lays out for.
const MinWidth = 24

// Typed is the visible part of a typewriter line.
type Typed struct {
	Text  string // revealed so far
	Full  string // complete text, reserves the final height
	Caret bool
}

// State is everything the page needs to draw one frame.
type State struct {
	Content *content.Content
	Styles  Styles
	Class   viewport.Class
	Width   int // columns
	Rows    int // rows of the scroll window

	// TailRows is the minimum height of the last section, so it can
	// reach the trigger band when the window is scrolled to the end.
	TailRows int

	// Revealed marks sections whose entrance has played.
	Revealed map[string]bool
	// Subtitles holds the typewriter line of each section that has one.
	Subtitles map[string]Typed

	Avatar string // pre-rendered portrait, empty for none

	Category string
	Jobs     []content.Job
	JobIndex int
	AutoPlay bool

	Filter content.ProjectFilter

	Year       int
	Hyperlinks bool

	// Mark wraps s in a click zone. Nil disables zones.
	Mark func(id, s string) string
}

// Page is a rendered body with the line span of every section.
type Page struct {
	Body   string
	Spans  sections.Spans
	Height int
}

func (st State) mark(id, s string) string {
	if st.Mark == nil {
		return s
	}
	return st.Mark(id, s)
}

// Container returns the content width and left margin for a terminal of
// width columns.
func Container(width int, m viewport.Metrics) (w, left int) {
	w = width - 2*m.PadH
	if m.MaxWidth > 0 && w > m.MaxWidth {
		w = m.MaxWidth
	}
	w = max(w, min(MinWidth, width))
	return w, max((width-w)/2, 0)
}

// Columns returns the grid column count for a card grid.
func Columns(c viewport.Class, maxCols int) int {
	n := 1
	switch c {
	case viewport.Tablet:
		n = 2
	case viewport.Desktop, viewport.Large:
		n = 3
	}
	return max(min(n, maxCols), 1)
}

type sectionFunc func(st State, sty Styles, w int) []string

var sectionOrder = []struct {
	id         string
	fullHeight bool
	render     sectionFunc
}{
	{sections.Home, true, renderHero},
	{sections.About, true, renderAbout},
	{sections.Experience, false, renderExperience},
	{sections.Projects, false, renderProjects},
	{sections.Skills, false, renderSkills},
	{sections.Contact, false, renderContact},
}

// Render lays out the whole page.
func Render(st State) Page {
	if st.Content == nil || st.Width <= 0 {
		return Page{Spans: sections.Spans{}}
	}
	metrics := st.Class.Metrics()
	w, left := Container(st.Width, metrics)
	margin := strings.Repeat(" ", left)

	var out []string
	spans := make(sections.Spans, len(sectionOrder))
	for i, s := range sectionOrder {
		sty := st.Styles
		if !st.Revealed[s.id] {
			sty = sty.Faded()
		}
		body := s.render(st, sty, w)

		lines := make([]string, 0, len(body)+2*metrics.PadV)
		lines = append(lines, blank(metrics.PadV)...)
		lines = append(lines, body...)
		lines = append(lines, blank(metrics.PadV)...)

		minH := st.Class.SectionMinHeight(st.Rows, s.fullHeight)
		if i == len(sectionOrder)-1 {
			minH = max(minH, st.TailRows)
		}
		if len(lines) < minH {
			extra := minH - len(lines)
			top := 0
			if s.fullHeight {
				top = extra / 2
			}
			lines = append(append(blank(top), lines...), blank(extra-top)...)
		}

		start := len(out)
		for _, l := range lines {
			if l == "" {
				out = append(out, "")
				continue
			}
			out = append(out, margin+l)
		}
		spans[s.id] = sections.Span{Start: start, End: len(out)}
	}
	return Page{Body: strings.Join(out, "\n"), Spans: spans, Height: len(out)}
}

func blank(n int) []string {
	return make([]string, max(n, 0))
}

func centered(lines []string, w int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = components.Center(l, w)
	}
	return out
}

func wrapStyled(s string, w int, st lipgloss.Style) []string {
	lines := components.Wrap(s, w)
	for i, l := range lines {
		lines[i] = st.Render(l)
	}
	return lines
}

func heading(title string, sty Styles, w int) []string {
	return append(centered([]string{sty.Heading.Render(title)}, w), "")
}

// typed renders a typewriter line wrapped to w, padded to the height of
// the full text so the page does not shift while it types.
func typed(t Typed, sty Styles, w int) []string {
	full := components.Wrap(t.Full, w-1)
	lines := components.Wrap(t.Text, w-1)
	if t.Text == "" {
		lines = nil
	}
	for i, l := range lines {
		lines[i] = sty.Subtitle.Render(l)
	}
	if t.Caret {
		if len(lines) == 0 {
			lines = []string{""}
		}
		lines[len(lines)-1] += sty.Caret.Render("▌")
	}
	for len(lines) < len(full) {
		lines = append(lines, "")
	}
	return centered(lines, w)
}

func (st State) link(i int, l content.Link, sty Styles) string {
	label := l.Label
	if st.Hyperlinks {
		label = ansi.SetHyperlink(l.Href) + label + ansi.ResetHyperlink()
	}
	return st.mark(ZoneLink+strconv.Itoa(i), sty.Link.Render(label))
}

func renderHero(st State, sty Styles, w int) []string {
	p := st.Content.Profile
	var lines []string

	if st.Avatar != "" {
		lines = append(lines, centered(strings.Split(st.Avatar, "\n"), w)...)
		lines = append(lines, "")
	}

	lines = append(lines, centered(wrapStyled(p.Greeting, w, sty.Title), w)...)
	lines = append(lines, "")

	if len(p.Roles) > 0 {
		roles := make([]string, len(p.Roles))
		for i, r := range p.Roles {
			roles[i] = sty.Secondary.Render(r)
		}
		sep := sty.Dim.Render(" | ")
		lines = append(lines, centered(components.Wrap(strings.Join(roles, sep), w), w)...)
		lines = append(lines, "")
	}

	work := st.mark(ZoneWork, sty.Button.Render("View My Work"))
	touch := st.mark(ZoneContact, sty.ButtonAlt.Render("Get In Touch"))
	if lipgloss.Width(work)+lipgloss.Width(touch)+2 <= w {
		row := lipgloss.JoinHorizontal(lipgloss.Bottom, work, "  ", touch)
		lines = append(lines, centered(strings.Split(row, "\n"), w)...)
	} else {
		lines = append(lines, centered([]string{work}, w)...)
		lines = append(lines, centered(strings.Split(touch, "\n"), w)...)
	}
	lines = append(lines, "")

	if links := st.Content.Links; len(links) > 0 {
		parts := make([]string, len(links))
		for i, l := range links {
			parts[i] = st.link(i, l, sty)
		}
		lines = append(lines, centered(components.Wrap(strings.Join(parts, "   "), w), w)...)
		lines = append(lines, "")
	}

	lines = append(lines, centered([]string{st.mark(ZoneDown, sty.Dim.Render("↓"))}, w)...)
	return lines
}

func renderAbout(st State, sty Styles, w int) []string {
	a := st.Content.About
	title := a.Heading
	if title == "" {
		title = "About Me"
	}
	text := min(w, 96)
	lines := heading(title, sty, w)
	return append(lines, centered(wrapStyled(a.Text, text, sty.Body), w)...)
}

func renderExperience(st State, sty Styles, w int) []string {
	lines := heading("Experience", sty, w)
	if t, ok := st.Subtitles[sections.Experience]; ok {
		lines = append(lines, typed(t, sty, w)...)
		lines = append(lines, "")
	}

	tabs := make([]string, 0, 3)
	for _, c := range content.Categories() {
		style := sty.Tab
		if c == st.Category {
			style = sty.TabOn
		}
		tabs = append(tabs, st.mark(ZoneCategory+c, style.Render(c)))
	}
	lines = append(lines, centered([]string{strings.Join(tabs, " ")}, w)...)
	lines = append(lines, "")

	if len(st.Jobs) == 0 {
		lines = append(lines, centered([]string{sty.Dim.Render("Nothing here yet.")}, w)...)
		return lines
	}

	cardW := min(w, 88)
	cards := make([][]string, len(st.Jobs))
	tallest := 0
	for i, j := range st.Jobs {
		cards[i] = jobCard(j, sty, cardW-4)
		tallest = max(tallest, len(cards[i]))
	}
	idx := min(max(st.JobIndex, 0), len(st.Jobs)-1)
	body := cards[idx]
	for len(body) < tallest {
		body = append(body, "")
	}
	card := sty.CardOn.Width(cardW - 2).Render(strings.Join(body, "\n"))
	lines = append(lines, centered(strings.Split(card, "\n"), w)...)

	if len(st.Jobs) > 1 {
		dots := make([]string, len(st.Jobs))
		for i := range st.Jobs {
			d := sty.Dim.Render("○")
			if i == idx {
				d = sty.Accent.Render("●")
			}
			dots[i] = st.mark(ZoneCard+strconv.Itoa(i), d)
		}
		status := "paused"
		if st.AutoPlay {
			status = "auto"
		}
		info := fmt.Sprintf("%s  %s", strings.Join(dots, " "),
			sty.Dim.Render(fmt.Sprintf("%d/%d %s", idx+1, len(st.Jobs), status)))
		lines = append(lines, "", components.Center(info, w))
	}
	return lines
}

func jobCard(j content.Job, sty Styles, w int) []string {
	lines := wrapStyled(j.Title, w, sty.Accent)
	meta := []string{j.Company}
	for _, s := range []string{j.Location, j.Duration} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	lines = append(lines, wrapStyled(strings.Join(meta, " · "), w, sty.Dim)...)
	if j.Type != "" {
		lines = append(lines, sty.Pill.Render("["+j.Type+"]"))
	}
	if j.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrapStyled(j.Description, w, sty.Body)...)
	}
	if len(j.Achievements) > 0 {
		lines = append(lines, "")
		for _, a := range j.Achievements {
			wrapped := components.Wrap(a, w-2)
			for i, l := range wrapped {
				prefix := "  "
				if i == 0 {
					prefix = sty.Accent.Render("•") + " "
				}
				lines = append(lines, prefix+sty.Body.Render(l))
			}
		}
	}
	if len(j.Technologies) > 0 {
		lines = append(lines, "")
		lines = append(lines, components.Pills(j.Technologies, w, sty.Pill.Render)...)
	}
	return lines
}

func renderProjects(st State, sty Styles, w int) []string {
	lines := heading("Projects", sty, w)
	if t, ok := st.Subtitles[sections.Projects]; ok {
		lines = append(lines, typed(t, sty, w)...)
		lines = append(lines, "")
	}

	tabs := make([]string, 0, 3)
	for _, f := range content.Filters() {
		label := f.String()
		if f == content.FilterAll {
			label = "all projects"
		}
		style := sty.Tab
		if f == st.Filter {
			style = sty.TabOn
		}
		tabs = append(tabs, st.mark(ZoneFilter+f.String(), style.Render(label)))
	}
	lines = append(lines, centered([]string{strings.Join(tabs, " ")}, w)...)
	lines = append(lines, "")

	items := st.Content.Projects.Filter(st.Filter)
	if len(items) == 0 {
		return append(lines, centered([]string{sty.Dim.Render("No projects match this filter.")}, w)...)
	}
	cards := make([][]string, len(items))
	cols := Columns(st.Class, len(items))
	cardW := gridCell(w, cols)
	for i, p := range items {
		cards[i] = projectCard(p, sty, cardW-4)
	}
	return append(lines, grid(cards, cols, cardW, sty.Card, w)...)
}

func projectCard(p content.Project, sty Styles, w int) []string {
	title := p.Title
	if p.Featured {
		title = "★ " + title
	}
	lines := wrapStyled(title, w, sty.Accent)
	lines = append(lines, wrapStyled(p.Description, w, sty.Body)...)
	if len(p.Tags) > 0 {
		lines = append(lines, "")
		lines = append(lines, components.Pills(p.Tags, w, sty.Pill.Render)...)
	}
	var refs []string
	if p.Source != "" {
		refs = append(refs, "source "+p.Source)
	}
	if p.Live != "" {
		refs = append(refs, "live "+p.Live)
	}
	for _, r := range refs {
		lines = append(lines, sty.Link.Render(components.Truncate(r, w)))
	}
	return lines
}

func renderSkills(st State, sty Styles, w int) []string {
	lines := heading("Skills", sty, w)
	if t, ok := st.Subtitles[sections.Skills]; ok {
		lines = append(lines, typed(t, sty, w)...)
		lines = append(lines, "")
	}
	cats := st.Content.Skills.Categories
	if len(cats) == 0 {
		return lines
	}
	cols := Columns(st.Class, len(cats))
	cardW := gridCell(w, cols)
	inner := cardW - 4
	nameW := min(14, inner/3)
	cards := make([][]string, len(cats))
	for i, c := range cats {
		card := []string{sty.Heading.Render(components.Truncate(c.Title, inner)), ""}
		for _, s := range c.Skills {
			card = append(card, components.SkillRow(s.Name, s.Level, nameW, inner, sty.Bar))
		}
		cards[i] = card
	}
	return append(lines, grid(cards, cols, cardW, sty.Card, w)...)
}

func renderContact(st State, sty Styles, w int) []string {
	p := st.Content.Profile
	lines := heading("Get In Touch", sty, w)
	if p.CTA != "" {
		lines = append(lines, centered(wrapStyled(p.CTA, w, sty.Body), w)...)
		lines = append(lines, "")
	}
	for i, l := range st.Content.Links {
		row := st.link(i, l, sty)
		if !l.External() || !st.Hyperlinks {
			row += "  " + sty.Dim.Render(l.Href)
		}
		lines = append(lines, components.Center(components.Truncate(row, w), w))
	}
	lines = append(lines, "")
	foot := fmt.Sprintf("© %d %s", st.Year, p.Name)
	return append(lines, centered([]string{sty.Dim.Render(foot)}, w)...)
}

const gridGap = 2

func gridCell(w, cols int) int {
	return (w - gridGap*(cols-1)) / cols
}

// grid lays cards out in rows of cols, each row as tall as its tallest
// card.
func grid(cards [][]string, cols, cardW int, style lipgloss.Style, w int) []string {
	var out []string
	gap := strings.Repeat(" ", gridGap)
	for start := 0; start < len(cards); start += cols {
		row := cards[start:min(start+cols, len(cards))]
		tallest := 0
		for _, c := range row {
			tallest = max(tallest, len(c))
		}
		boxes := make([]string, 0, 2*len(row))
		for i, c := range row {
			if i > 0 {
				boxes = append(boxes, gap)
			}
			boxes = append(boxes, style.Width(cardW-2).Height(tallest).Render(strings.Join(c, "\n")))
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
		out = append(out, centered(strings.Split(joined, "\n"), w)...)
		out = append(out, "")
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}
