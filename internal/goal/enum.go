package goal

// AssociationMode decides how a task-id payload combines with the tasks a
// goal already has.
type AssociationMode int

const (
	// ModeReplace makes the payload the goal's complete task set.
	ModeReplace AssociationMode = iota
	// ModeUnion adds the payload to the goal's existing tasks.
	ModeUnion
)

func (m AssociationMode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeUnion:
		return "union"
	default:
		return "unknown"
	}
}
