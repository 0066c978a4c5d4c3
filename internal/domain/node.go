package domain

// Kinds of network nodes.
const (
	NodeKindDepot = "depot"
	NodeKindHub   = "hub"
)

// A named point in a city's logistics network: the central depot or a micro-hub.
type Node struct {
	Key      string
	Name     string
	Location Coordinates
	Kind     string
}
