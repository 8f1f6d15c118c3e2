package types

type (
	// Node is one entry in a directory snapshot. Directories carry
	// Children, files carry Extension.
	Node struct {
		Path      string `json:"path"`
		Type      Kind   `json:"type"`
		Extension string `json:"extension,omitempty"`
		Children  []Node `json:"children,omitempty"`
	}
)
