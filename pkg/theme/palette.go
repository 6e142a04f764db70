package theme

import (
	"github.com/kasuboski/shelfstats/pkg/book"
)

var (
	ratingPalette = []string{"#DC2626", "#EA580C", "#F59E0B", "#16A34A", "#2563EB"}

	personalRatingPalette = []string{
		"#DC2626", "#EA580C", "#F59E0B", "#EAB308", "#FACC15",
		"#BEF264", "#65A30D", "#16A34A", "#059669", "#2563EB",
	}

	pageCountPalette = []string{"#81C784", "#4FC3F7", "#FFB74D", "#F06292", "#BA68C8"}

	progressPalette = []string{"#6c757d", "#ffc107", "#fd7e14", "#17a2b8", "#6f42c1", "#28a745"}

	standalonePalette = []string{
		"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#ffeaa7",
		"#dda0dd", "#98d8c8", "#ff7675", "#74b9ff", "#fdcb6e",
	}

	topSeriesPalette = []string{
		"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
		"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
		"#5778a4", "#e69138", "#d62728", "#6aa7b8", "#54a24b",
		"#fdd247", "#b07aa1", "#ff9d9a", "#9e6762", "#c9b2d6",
	}

	topCategoriesPalette = []string{
		"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57",
		"#FF9FF3", "#54A0FF", "#5F27CD", "#00D2D3", "#FF9F43",
		"#FF6348", "#2ED573", "#3742FA", "#F368E0", "#FF3838",
		"#FF4757", "#5352ED", "#70A1FF", "#7F8FA6", "#40407A",
		"#2C2C54", "#40407A", "#706FD3", "#F97F51", "#F8B500",
	}

	topCategoriesHoverPalette = []string{
		"#FF5252", "#26A69A", "#2196F3", "#66BB6A", "#FFB74D",
		"#E91E63", "#3F51B5", "#9C27B0", "#00BCD4", "#FF9800",
		"#F44336", "#4CAF50", "#2196F3", "#E91E63", "#FF5722",
		"#FF4081", "#3F51B5", "#5C6BC0", "#607D8B", "#303F9F",
		"#1A237E", "#303F9F", "#5E35B1", "#FF6F00", "#E65100",
	}

	bookTypeColors = map[book.Type]string{
		book.TypePDF:  "#e74c3c",
		book.TypeEPUB: "#3498db",
		book.TypeCBZ:  "#27a153",
		book.TypeCBX:  "#d4b50f",
		book.TypeCBR:  "#e67e22",
		book.TypeCB7:  "#9b59b6",
	}

	statusColors = map[book.ReadStatus]string{
		book.ReadStatusRead:          "#2ecc71",
		book.ReadStatusReading:       "#f39c12",
		book.ReadStatusReReading:     "#9b59b6",
		book.ReadStatusPartiallyRead: "#e67e22",
		book.ReadStatusPaused:        "#34495e",
		book.ReadStatusUnread:        "#4169e1",
		book.ReadStatusWontRead:      "#95a5a6",
		book.ReadStatusAbandoned:     "#e74c3c",
		book.ReadStatusUnset:         "#3498db",
	}
)

const (
	FallbackColor = "#95a5a6"

	yearLineColor      = "#4ECDC4"
	yearFillColor      = "rgba(78, 205, 196, 0.1)"
	readingSeriesColor = "#2ecc71"
	collectSeriesColor = "#3498db"
)

// BookTypeColor returns the color of a format or the fallback for unknown ones
func BookTypeColor(t book.Type) string {
	if c, ok := bookTypeColors[t]; ok {
		return c
	}
	return FallbackColor
}

// StatusColor returns the color of a read status after normalization
func StatusColor(s book.ReadStatus) string {
	return statusColors[book.NormalizeReadStatus(s)]
}

func cycle(palette []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}

func repeat(color string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = color
	}
	return out
}

// byName colors each label by its position in the fixed category order so a
// category keeps its color when its neighbours are dropped.
func byName(names []string, palette []string, labels []string) []string {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	out := make([]string, len(labels))
	for i, l := range labels {
		if j, ok := index[l]; ok {
			out[i] = palette[j%len(palette)]
		} else {
			out[i] = FallbackColor
		}
	}
	return out
}
