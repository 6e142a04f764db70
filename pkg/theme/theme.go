package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown theme mode")

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// FromDark maps the boolean dark mode signal onto a Mode
func FromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) IsDark() bool {
	return m == Dark
}

// Tokens are the mode dependent colors shared by every chart
type Tokens struct {
	Text              string `json:"text"`
	TooltipBackground string `json:"tooltipBackground"`
	Border            string `json:"border"`
	GridX             string `json:"gridX"`
	GridY             string `json:"gridY"`
}

var (
	darkTokens = Tokens{
		Text:              "#ffffff",
		TooltipBackground: "rgba(0, 0, 0, 0.9)",
		Border:            "#666666",
		GridX:             "rgba(255, 255, 255, 0.1)",
		GridY:             "rgba(255, 255, 255, 0.05)",
	}
	lightTokens = Tokens{
		Text:              "#000000",
		TooltipBackground: "rgba(255, 255, 255, 0.9)",
		Border:            "#444444",
		GridX:             "rgba(0, 0, 0, 0.1)",
		GridY:             "rgba(0, 0, 0, 0.05)",
	}
)

// TokensFor returns the tokens of a mode. Anything but Dark is treated as Light.
func TokensFor(mode Mode) Tokens {
	if mode.IsDark() {
		return darkTokens
	}
	return lightTokens
}
