package component

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	displayPulseLow    = 0.35
	displayPulseHigh   = 1.0
	displayPulseSecond = 0.6
)

// DisplayModel marks the transient preview of a hovered palette entry. At
// most one exists at the end of a frame.
type DisplayModel struct {
	MeshPath string
	Alpha    float64
	Pulse    *gween.Sequence
}

// NewDisplayModel returns a display model for meshPath with a pulse that
// yoyos forever between a dim and a full alpha.
func NewDisplayModel(meshPath string) DisplayModel {
	pulse := gween.NewSequence(gween.New(displayPulseLow, displayPulseHigh, displayPulseSecond, ease.InOutSine))
	pulse.SetYoyo(true)
	pulse.SetLoop(-1)
	return DisplayModel{
		MeshPath: meshPath,
		Alpha:    displayPulseLow,
		Pulse:    pulse,
	}
}

var DisplayModelComponent = NewComponent[DisplayModel]()
