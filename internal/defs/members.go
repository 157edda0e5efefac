package defs

// MemberDefinition describes one roster entry as shipped with the app.
type MemberDefinition struct {
	Name  string
	Color string // CSS hex colour
}

// Members is the fixed roster. Order matters: an entry's index is its identity.
var Members = []MemberDefinition{
	{Name: "Emre", Color: "#f43f5e"},     // Rose
	{Name: "Tracy", Color: "#8b5cf6"},    // Violet
	{Name: "Zeyn Ali", Color: "#0ea5e9"}, // Sky Blue
	{Name: "Yusha", Color: "#10b981"},    // Emerald
}
