package component

import (
	"log"
	"strings"
)

// Placer is the part category of an entity being placed in the editor. It is
// decided once, when the placer is spawned, from the asset path.
type Placer uint8

const (
	PlacerHull Placer = iota
	PlacerWheel
)

func (p Placer) String() string {
	switch p {
	case PlacerWheel:
		return "Wheel"
	default:
		return "Hull"
	}
}

// ParsePlacer maps a category name written by String back to a Placer.
func ParsePlacer(s string) (Placer, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wheel":
		return PlacerWheel, true
	case "hull":
		return PlacerHull, true
	default:
		return PlacerHull, false
	}
}

var PlacerComponent = NewComponent[Placer]()

func isPathSeparator(r rune) bool {
	switch r {
	case '/', '\\', '.', ':':
		return true
	}
	return false
}

// PlacerFromPath classifies an asset path by whole path tokens. "wheel" wins
// over "hull"; anything else falls back to PlacerHull.
func PlacerFromPath(path string) Placer {
	tokens := strings.FieldsFunc(strings.ToLower(path), isPathSeparator)

	hull := false
	for _, tok := range tokens {
		switch tok {
		case "wheel":
			return PlacerWheel
		case "hull":
			hull = true
		}
	}
	if !hull {
		log.Printf("placer: cannot infer placer type from %q, defaulting to %s", path, PlacerHull)
	}
	return PlacerHull
}
