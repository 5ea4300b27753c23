package predicate

// Target represents what aspect of a key to compare in predicates.
type Target int

const (
	// TargetVersion compares the modification revision of the key.
	// The predicate value is an int64.
	TargetVersion Target = iota
	// TargetValue compares the stored value structurally.
	// The predicate value is a value.Value.
	TargetValue
)

func (t Target) String() string {
	switch t {
	case TargetVersion:
		return "Version"
	case TargetValue:
		return "Value"
	default:
		return "Unknown"
	}
}
