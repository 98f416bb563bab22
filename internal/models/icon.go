package models

import (
	"errors"
	"fmt"
)

var ErrUnknownIcon = errors.New("unknown icon")

// Icon identifies a feature glyph. The set is closed; glyphs are bound to
// each value in the page package.
type Icon int

const (
	IconTv Icon = iota + 1
	IconFilm
	IconClapperboard
	IconShield
	IconSmartphone
	IconZap
)

var iconNames = map[Icon]string{
	IconTv:           "Tv",
	IconFilm:         "Film",
	IconClapperboard: "Clapperboard",
	IconShield:       "Shield",
	IconSmartphone:   "Smartphone",
	IconZap:          "Zap",
}

// Icons returns every known icon in declaration order.
func Icons() []Icon {
	return []Icon{IconTv, IconFilm, IconClapperboard, IconShield, IconSmartphone, IconZap}
}

func (i Icon) Valid() bool {
	_, ok := iconNames[i]
	return ok
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Icon(%d)", int(i))
}

func ParseIcon(name string) (Icon, error) {
	for _, icon := range Icons() {
		if icon.String() == name {
			return icon, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
}
