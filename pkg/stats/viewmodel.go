package stats

import "slices"

// ViewModel is the chart library agnostic payload published per statistic.
// Numeric fields are produced by rules, Style fields are filled by the theme package.
type ViewModel struct {
	Kind    Kind     `json:"kind"`
	Labels  []string `json:"labels"`
	Series  []Series `json:"series"`
	Entries []Entry  `json:"entries,omitempty"`
}

type Series struct {
	Name   string    `json:"name"`
	Key    string    `json:"key,omitempty"`
	Values []float64 `json:"values"`
	Style  Style     `json:"style"`
}

type Style struct {
	BackgroundColors      []string `json:"backgroundColors,omitempty"`
	BorderColors          []string `json:"borderColors,omitempty"`
	HoverBackgroundColors []string `json:"hoverBackgroundColors,omitempty"`
	HoverBorderColors     []string `json:"hoverBorderColors,omitempty"`
	PointColors           []string `json:"pointColors,omitempty"`
}

// Entry is the tooltip side channel for a single label
type Entry struct {
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Detail      string `json:"detail,omitempty"`
	Description string `json:"description,omitempty"`
}

// Clone returns a deep copy so a published value is never mutated
func (vm ViewModel) Clone() ViewModel {
	out := ViewModel{
		Kind:    vm.Kind,
		Labels:  slices.Clone(vm.Labels),
		Entries: slices.Clone(vm.Entries),
	}

	if vm.Series != nil {
		out.Series = make([]Series, len(vm.Series))
		for i, s := range vm.Series {
			out.Series[i] = Series{
				Name:   s.Name,
				Key:    s.Key,
				Values: slices.Clone(s.Values),
				Style:  s.Style.Clone(),
			}
		}
	}

	return out
}

func (s Style) Clone() Style {
	return Style{
		BackgroundColors:      slices.Clone(s.BackgroundColors),
		BorderColors:          slices.Clone(s.BorderColors),
		HoverBackgroundColors: slices.Clone(s.HoverBackgroundColors),
		HoverBorderColors:     slices.Clone(s.HoverBorderColors),
		PointColors:           slices.Clone(s.PointColors),
	}
}

// EmptyViewModel is published when there is nothing to aggregate
func EmptyViewModel(kind Kind) ViewModel {
	return ViewModel{
		Kind:   kind,
		Labels: []string{},
		Series: []Series{},
	}
}

func single(kind Kind, name string, labels []string, values []float64, entries []Entry) ViewModel {
	return ViewModel{
		Kind:    kind,
		Labels:  labels,
		Series:  []Series{{Name: name, Values: values}},
		Entries: entries,
	}
}
