package domain

// DebugLabelPrefix is prepended to the name of every "currently in view" node.
const DebugLabelPrefix = "[currently in view] "

// DebugLabel returns the observability label of a derived node.
func DebugLabel(name string) string {
	return DebugLabelPrefix + name
}
