package entity

// ItemKind identifies an inventory item type
type ItemKind int

const (
	ItemKey ItemKind = iota
)

// String returns the string representation of the item kind
func (k ItemKind) String() string {
	switch k {
	case ItemKey:
		return "key"
	default:
		return "unknown"
	}
}

// Item is an inventory item
type Item struct {
	Kind ItemKind
}
