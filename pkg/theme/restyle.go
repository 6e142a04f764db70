package theme

import (
	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/stats"
)

// Restyle returns a copy of vm with every style field rewritten for mode.
// Labels, values, entries and series order are left as they are.
func Restyle(vm stats.ViewModel, mode Mode) stats.ViewModel {
	out := vm.Clone()
	tokens := TokensFor(mode)

	for i := range out.Series {
		out.Series[i].Style = seriesStyle(out, i, tokens)
	}

	return out
}

func seriesStyle(vm stats.ViewModel, i int, tokens Tokens) stats.Style {
	n := len(vm.Labels)
	border := repeat(tokens.Text, n)

	switch vm.Kind {
	case stats.KindRating:
		return bars(cycle(ratingPalette, n), border, tokens)
	case stats.KindPersonalRating:
		return bars(cycle(personalRatingPalette, n), border, tokens)
	case stats.KindPageCount:
		return bars(byName(stats.PageCategoryNames(), pageCountPalette, vm.Labels), border, tokens)
	case stats.KindReadingProgress:
		return bars(cycle(progressPalette, n), border, tokens)
	case stats.KindSeriesStandalone:
		return bars(byName(stats.StandaloneCategories, standalonePalette, vm.Labels), border, tokens)

	case stats.KindFileSize:
		colors := make([]string, n)
		for j := range colors {
			var t book.Type
			if j < len(vm.Entries) {
				t = book.Type(vm.Entries[j].Key)
			}
			colors[j] = BookTypeColor(t)
		}
		return bars(colors, colors, tokens)

	case stats.KindTopSeries:
		colors := cycle(topSeriesPalette, n)
		return bars(colors, colors, tokens)

	case stats.KindTopCategories:
		s := bars(cycle(topCategoriesPalette, n), border, tokens)
		s.HoverBackgroundColors = cycle(topCategoriesHoverPalette, n)
		return s

	case stats.KindPublicationYear:
		return stats.Style{
			BackgroundColors:  repeat(yearFillColor, n),
			BorderColors:      repeat(yearLineColor, n),
			HoverBorderColors: repeat(tokens.Text, n),
			PointColors:       repeat(yearLineColor, n),
		}

	case stats.KindReadingCompletion:
		return bars(repeat(StatusColor(book.ReadStatus(vm.Series[i].Key)), n), border, tokens)

	case stats.KindSeriesCompletion:
		color := readingSeriesColor
		if i > 0 {
			color = collectSeriesColor
		}
		return bars(repeat(color, n), border, tokens)
	}

	return bars(repeat(FallbackColor, n), border, tokens)
}

func bars(background, border []string, tokens Tokens) stats.Style {
	return stats.Style{
		BackgroundColors:  background,
		BorderColors:      border,
		HoverBorderColors: repeat(tokens.Text, len(background)),
	}
}
