package resource

// BuildToolMode is the editor's global editing mode.
type BuildToolMode uint8

const (
	GizmoMode BuildToolMode = iota
	PlacerMode
	SelectorMode
	AttachMode
)

func (m BuildToolMode) String() string {
	switch m {
	case GizmoMode:
		return "GizmoMode"
	case PlacerMode:
		return "PlacerMode"
	case SelectorMode:
		return "SelectorMode"
	case AttachMode:
		return "AttachMode"
	default:
		return "UnknownMode"
	}
}

// AllBuildToolModes lists every mode in menu order.
func AllBuildToolModes() []BuildToolMode {
	return []BuildToolMode{GizmoMode, PlacerMode, SelectorMode, AttachMode}
}
