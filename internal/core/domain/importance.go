package domain

// MessageImportance is the level at which resolvers emit diagnostic messages.
type MessageImportance int

const (
	// ImportanceHigh messages are always shown.
	ImportanceHigh MessageImportance = iota
	// ImportanceNormal messages are shown at default verbosity.
	ImportanceNormal
	// ImportanceLow messages are only shown at diagnostic verbosity.
	ImportanceLow
)

// String returns the importance name.
func (i MessageImportance) String() string {
	switch i {
	case ImportanceHigh:
		return "high"
	case ImportanceNormal:
		return "normal"
	case ImportanceLow:
		return "low"
	default:
		return "unknown"
	}
}
