package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/shelfstats/pkg/book"
	"github.com/kasuboski/shelfstats/pkg/stats"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"dark", Dark, false},
		{" Light ", Light, false},
		{"DARK", Dark, false},
		{"sepia", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownMode)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTokensFor(t *testing.T) {
	assert.Equal(t, "#ffffff", TokensFor(Dark).Text)
	assert.Equal(t, "#666666", TokensFor(Dark).Border)
	assert.Equal(t, "#000000", TokensFor(Light).Text)
	assert.Equal(t, "rgba(255, 255, 255, 0.9)", TokensFor(Light).TooltipBackground)
	assert.Equal(t, TokensFor(Light), TokensFor("unknown"))
	assert.Equal(t, Dark, FromDark(true))
	assert.Equal(t, Light, FromDark(false))
}

func sample() []book.Book {
	return []book.Book{
		{
			BookType:       book.TypePDF,
			FileSizeKB:     book.Ptr(4096.0),
			PersonalRating: book.Ptr(8.0),
			ReadStatus:     book.ReadStatusRead,
			Metadata: &book.Metadata{
				Title:         "First",
				PageCount:     book.Ptr(900),
				PublishedDate: "2001",
				Categories:    []string{"Fantasy"},
				SeriesName:    "Saga",
				SeriesNumber:  book.Ptr(1.0),
				SeriesTotal:   book.Ptr(2),
				Rating:        book.Ptr(4.1),
			},
		},
		{
			BookType:   "MOBI",
			FileSizeKB: book.Ptr(1024.0),
			ReadStatus: book.ReadStatusPaused,
			Metadata: &book.Metadata{
				Title:        "Second",
				PageCount:    book.Ptr(120),
				Categories:   []string{"Fantasy", "Horror"},
				SeriesName:   "Saga",
				SeriesNumber: book.Ptr(2.0),
			},
		},
		{},
	}
}

func TestRestyleKeepsNumericPayload(t *testing.T) {
	for _, kind := range stats.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			res, err := stats.Compute(kind, sample(), nil)
			require.NoError(t, err)
			vm := res.ViewModel()

			dark := Restyle(vm, Dark)
			light := Restyle(dark, Light)

			for _, styled := range []stats.ViewModel{dark, light} {
				assert.Equal(t, vm.Kind, styled.Kind)
				assert.Equal(t, vm.Labels, styled.Labels)
				assert.Equal(t, vm.Entries, styled.Entries)
				require.Len(t, styled.Series, len(vm.Series))
				for i := range vm.Series {
					assert.Equal(t, vm.Series[i].Name, styled.Series[i].Name)
					assert.Equal(t, vm.Series[i].Values, styled.Series[i].Values)
					assert.Len(t, styled.Series[i].Style.BackgroundColors, len(vm.Labels))
					assert.Len(t, styled.Series[i].Style.BorderColors, len(vm.Labels))
				}
			}

			// input is never touched
			for _, s := range vm.Series {
				assert.Empty(t, s.Style.BackgroundColors)
			}
		})
	}
}

func TestRestyleModeDependentFields(t *testing.T) {
	res, err := stats.Compute(stats.KindPageCount, sample(), nil)
	require.NoError(t, err)
	vm := res.ViewModel()

	dark := Restyle(vm, Dark)
	light := Restyle(vm, Light)

	assert.Equal(t, []string{"#ffffff", "#ffffff"}, dark.Series[0].Style.BorderColors)
	assert.Equal(t, []string{"#000000", "#000000"}, light.Series[0].Style.BorderColors)
	assert.Equal(t, dark.Series[0].Style.BackgroundColors, light.Series[0].Style.BackgroundColors)
}

func TestRestylePalettes(t *testing.T) {
	t.Run("page count colors follow the category", func(t *testing.T) {
		res, err := stats.Compute(stats.KindPageCount, sample(), nil)
		require.NoError(t, err)

		vm := Restyle(res.ViewModel(), Dark)
		assert.Equal(t, []string{"Short (< 200)", "Epic (> 800)"}, vm.Labels)
		assert.Equal(t, []string{"#81C784", "#BA68C8"}, vm.Series[0].Style.BackgroundColors)
	})

	t.Run("file size colors follow the format", func(t *testing.T) {
		res, err := stats.Compute(stats.KindFileSize, sample(), nil)
		require.NoError(t, err)

		vm := Restyle(res.ViewModel(), Light)
		assert.Equal(t, []string{"#e74c3c", FallbackColor}, vm.Series[0].Style.BackgroundColors)
		assert.Equal(t, vm.Series[0].Style.BackgroundColors, vm.Series[0].Style.BorderColors)
	})

	t.Run("reading completion colors follow the status", func(t *testing.T) {
		res, err := stats.Compute(stats.KindReadingCompletion, sample(), nil)
		require.NoError(t, err)

		vm := Restyle(res.ViewModel(), Light)
		for _, s := range vm.Series {
			assert.Equal(t, StatusColor(book.ReadStatus(s.Key)), s.Style.BackgroundColors[0])
		}
		assert.Equal(t, "#2ecc71", vm.Series[0].Style.BackgroundColors[0])
	})

	t.Run("top series cycles", func(t *testing.T) {
		assert.Equal(t, []string{"#4e79a7", "#f28e2c", "#4e79a7"}, cycle(topSeriesPalette[:2], 3))
	})

	t.Run("top categories hover colors", func(t *testing.T) {
		res, err := stats.Compute(stats.KindTopCategories, sample(), nil)
		require.NoError(t, err)

		vm := Restyle(res.ViewModel(), Dark)
		assert.Equal(t, []string{"#FF6B6B", "#4ECDC4"}, vm.Series[0].Style.BackgroundColors)
		assert.Equal(t, []string{"#FF5252", "#26A69A"}, vm.Series[0].Style.HoverBackgroundColors)
	})

	t.Run("publication year line", func(t *testing.T) {
		vm := Restyle(stats.PublicationYearsAsOf(sample(), 2025).ViewModel(), Dark)
		assert.Equal(t, []string{yearLineColor}, vm.Series[0].Style.PointColors)
		assert.Equal(t, []string{yearFillColor}, vm.Series[0].Style.BackgroundColors)
	})

	t.Run("empty view model", func(t *testing.T) {
		vm := Restyle(stats.EmptyViewModel(stats.KindRating), Dark)
		assert.Empty(t, vm.Series)
		assert.Empty(t, vm.Labels)
	})
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#3498db", StatusColor("bogus"))
	assert.Equal(t, "#e74c3c", StatusColor(book.ReadStatusAbandoned))
}
