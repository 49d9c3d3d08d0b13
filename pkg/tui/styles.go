package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Styles is the page's style sheet, derived from the applied palette.
type Styles struct {
	Base      lipgloss.Style
	Title     lipgloss.Style // hero headline
	Heading   lipgloss.Style // section headings
	Subtitle  lipgloss.Style
	Body      lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Secondary lipgloss.Style
	Link      lipgloss.Style
	Caret     lipgloss.Style
	Card      lipgloss.Style
	CardOn    lipgloss.Style
	Tab       lipgloss.Style
	TabOn     lipgloss.Style
	Pill      lipgloss.Style
	Button    lipgloss.Style
	ButtonAlt lipgloss.Style
	NavBar    lipgloss.Style
	NavItem   lipgloss.Style
	NavOn     lipgloss.Style
	Panel     lipgloss.Style // floating toolkit
	Tooltip   lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	Bar       components.BarStyle
}

// NewStyles builds the style sheet for the palette currently applied to
// canvas.
func NewStyles(canvas *theme.Canvas) Styles {
	p := canvas.Palette()
	ns := canvas.NewStyle
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	return Styles{
		Base:      ns().Foreground(c(p.Foreground)),
		Title:     ns().Bold(true).Foreground(c(p.Heading)),
		Heading:   ns().Bold(true).Foreground(c(p.Heading)),
		Subtitle:  ns().Foreground(c(p.Dim)),
		Body:      ns().Foreground(c(p.Foreground)),
		Dim:       ns().Foreground(c(p.Dim)),
		Accent:    ns().Bold(true).Foreground(c(p.Accent)),
		Secondary: ns().Foreground(c(p.Secondary)),
		Link:      ns().Underline(true).Foreground(c(p.Link)),
		Caret:     ns().Foreground(c(p.Caret)),
		Card: ns().Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Border)).Padding(0, 1),
		CardOn: ns().Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Accent)).Padding(0, 1),
		Tab:       ns().Foreground(c(p.Dim)).Padding(0, 1),
		TabOn:     ns().Bold(true).Foreground(c(p.Background)).Background(c(p.Accent)).Padding(0, 1),
		Pill:      ns().Foreground(c(p.Secondary)),
		Button:    ns().Bold(true).Foreground(c(p.Background)).Background(c(p.Accent)).Padding(0, 2),
		ButtonAlt: ns().Foreground(c(p.Foreground)).Border(lipgloss.NormalBorder(), false, false, true).BorderForeground(c(p.Border)).Padding(0, 1),
		NavBar:    ns().Background(c(p.Surface)).Foreground(c(p.Foreground)),
		NavItem:   ns().Background(c(p.Surface)).Foreground(c(p.Dim)).Padding(0, 1),
		NavOn:     ns().Background(c(p.Surface)).Foreground(c(p.Accent)).Bold(true).Underline(true).Padding(0, 1),
		Panel: ns().Border(lipgloss.RoundedBorder()).BorderForeground(c(p.Accent)).
			Background(c(p.Surface)).Padding(0, 1),
		Tooltip:  ns().Foreground(c(p.Background)).Background(c(p.Secondary)).Padding(0, 1),
		HelpKey:  ns().Foreground(c(p.HelpKey)),
		HelpDesc: ns().Foreground(c(p.Dim)),
		Bar: components.BarStyle{
			Filled: ns().Foreground(c(p.BarFilled)),
			Empty:  ns().Foreground(c(p.BarEmpty)),
			Label:  ns().Foreground(c(p.Foreground)),
			Value:  ns().Foreground(c(p.Dim)),
		},
	}
}

// Faded returns a copy where text is drawn in the dim colour, used for
// sections that have not scrolled into view yet.
func (s Styles) Faded() Styles {
	dim := s.Dim.GetForeground()
	f := s
	for _, st := range []*lipgloss.Style{
		&f.Title, &f.Heading, &f.Subtitle, &f.Body, &f.Accent, &f.Secondary,
		&f.Link, &f.Pill, &f.Bar.Filled, &f.Bar.Label,
	} {
		*st = st.Foreground(dim)
	}
	f.Bar.Empty = f.Bar.Empty.Faint(true)
	f.CardOn = f.Card
	return f
}
