package domain

// ChangeKind classifies a filesystem event for the reload pipeline.
type ChangeKind uint8

const (
	// Added indicates a source file appeared under the watched root.
	Added ChangeKind = iota
	// Modified indicates an existing source file was rewritten.
	Modified
	// Removed indicates a source file was deleted or renamed away.
	Removed
)

// String returns the lowercase name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is a classified filesystem event. Path is resolved and absolute.
type Change struct {
	Kind ChangeKind
	Path string
}
