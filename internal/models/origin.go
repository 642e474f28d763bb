package models

// Origin is the provenance category of a discovered theme
type Origin int

const (
	OriginSystem  Origin = iota + 1 // Shipped with fastfetch
	OriginExample                   // Bundled under presets/examples
	OriginUser                      // Added by the user
)

// String returns a string representation of the origin
func (o Origin) String() string {
	switch o {
	case OriginSystem:
		return "system"
	case OriginExample:
		return "example"
	case OriginUser:
		return "user"
	default:
		return "unknown"
	}
}

// Icon returns an icon representing the origin
func (o Origin) Icon() string {
	switch o {
	case OriginSystem:
		return "⚙"
	case OriginExample:
		return "◆"
	case OriginUser:
		return "●"
	default:
		return "?"
	}
}

// Precedence ranks origins on key collision. Higher wins.
func (o Origin) Precedence() int {
	switch o {
	case OriginUser:
		return 3
	case OriginExample:
		return 2
	case OriginSystem:
		return 1
	default:
		return 0
	}
}

// KeyPrefix returns the prefix scanned keys carry for this origin
func (o Origin) KeyPrefix() string {
	switch o {
	case OriginExample:
		return "examples/"
	case OriginUser:
		return "user/"
	default:
		return ""
	}
}
