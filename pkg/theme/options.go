package theme

import (
	"fmt"

	"github.com/kasuboski/shelfstats/pkg/stats"
)

type ChartType string

const (
	ChartBar       ChartType = "bar"
	ChartLine      ChartType = "line"
	ChartPolarArea ChartType = "polarArea"
)

type Axis struct {
	Title      string   `json:"title,omitempty"`
	Stacked    bool     `json:"stacked,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	TitleColor string   `json:"titleColor"`
	TickColor  string   `json:"tickColor"`
	GridColor  string   `json:"gridColor"`
}

type Tooltip struct {
	Background string `json:"background"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Border     string `json:"border"`
}

// RenderOptions is the static render configuration of a chart. Only the color
// fields depend on the mode.
type RenderOptions struct {
	Kind        stats.Kind `json:"kind"`
	Type        ChartType  `json:"type"`
	IndexAxis   string     `json:"indexAxis"`
	ShowLegend  bool       `json:"showLegend"`
	LegendColor string     `json:"legendColor"`
	Tooltip     Tooltip    `json:"tooltip"`
	X           *Axis      `json:"x,omitempty"`
	Y           *Axis      `json:"y,omitempty"`
	// Radial is set for polar charts instead of X and Y
	Radial *Axis `json:"radial,omitempty"`

	// tooltip border uses the neutral border token instead of the text color
	softBorder bool
}

const booksAxis = "Number of Books"

func layout(kind stats.Kind) (RenderOptions, error) {
	o := RenderOptions{Kind: kind, Type: ChartBar, IndexAxis: "x"}

	switch kind {
	case stats.KindRating:
		o.X, o.Y = &Axis{Title: "External Rating Range"}, &Axis{Title: booksAxis}
		o.softBorder = true
	case stats.KindPersonalRating:
		o.X, o.Y = &Axis{Title: "Personal Rating Range"}, &Axis{Title: booksAxis}
		o.softBorder = true
	case stats.KindPageCount:
		o.X, o.Y = &Axis{Title: "Page Count Category"}, &Axis{Title: booksAxis}
		o.softBorder = true
	case stats.KindFileSize:
		o.IndexAxis = "y"
		o.X, o.Y = &Axis{Title: "File Size (MB)"}, &Axis{}
		o.softBorder = true
	case stats.KindPublicationYear:
		o.Type = ChartLine
		o.X, o.Y = &Axis{Title: "Publication Year"}, &Axis{Title: booksAxis}
	case stats.KindReadingProgress:
		o.X, o.Y = &Axis{Title: "Progress Range"}, &Axis{Title: booksAxis}
	case stats.KindReadingCompletion:
		o.ShowLegend = true
		o.X, o.Y = &Axis{Title: "Categories", Stacked: true}, &Axis{Title: booksAxis, Stacked: true}
	case stats.KindSeriesCompletion:
		o.ShowLegend = true
		limit := 100.0
		o.X, o.Y = &Axis{Title: "Series"}, &Axis{Title: "Completion %", Max: &limit}
	case stats.KindSeriesStandalone:
		o.Type = ChartPolarArea
		o.ShowLegend = true
		o.Radial = &Axis{}
	case stats.KindTopSeries:
		o.IndexAxis = "y"
		o.X, o.Y = &Axis{Title: booksAxis}, &Axis{Title: "Series"}
		o.softBorder = true
	case stats.KindTopCategories:
		o.IndexAxis = "y"
		o.X, o.Y = &Axis{Title: booksAxis}, &Axis{Title: "Categories"}
	default:
		return RenderOptions{}, fmt.Errorf("%w: %q", stats.ErrUnknownKind, kind)
	}

	return o, nil
}

// Options builds the render configuration of kind styled for mode
func Options(kind stats.Kind, mode Mode) (RenderOptions, error) {
	o, err := layout(kind)
	if err != nil {
		return RenderOptions{}, err
	}
	return o.Restyle(mode), nil
}

// Restyle returns a copy with only the color fields rewritten for mode
func (o RenderOptions) Restyle(mode Mode) RenderOptions {
	tokens := TokensFor(mode)

	o.LegendColor = tokens.Text
	o.Tooltip = Tooltip{
		Background: tokens.TooltipBackground,
		Title:      tokens.Text,
		Body:       tokens.Text,
		Border:     tokens.Text,
	}
	if o.softBorder {
		o.Tooltip.Border = tokens.Border
	}

	o.X = axisColors(o.X, tokens, tokens.GridX)
	o.Y = axisColors(o.Y, tokens, tokens.GridY)
	o.Radial = axisColors(o.Radial, tokens, tokens.GridX)

	return o
}

func axisColors(a *Axis, tokens Tokens, grid string) *Axis {
	if a == nil {
		return nil
	}

	out := *a
	out.TitleColor = tokens.Text
	out.TickColor = tokens.Text
	out.GridColor = grid
	return &out
}

// AllOptions builds the render configuration of every statistic
func AllOptions(mode Mode) map[stats.Kind]RenderOptions {
	out := make(map[stats.Kind]RenderOptions, len(stats.Kinds))
	for _, kind := range stats.Kinds {
		o, err := Options(kind, mode)
		if err != nil {
			continue
		}
		out[kind] = o
	}
	return out
}
