package host

import "slices"

// Content is the renderable payload of a slot. The framework never looks
// inside it beyond emptiness checks.
type Content struct {
	Icon   string
	Name   string
	Lore   []string
	Amount int
}

// Empty returns the placeholder used for unoccupied slots.
func Empty() Content {
	return Content{}
}

// IsEmpty reports whether c is the placeholder.
func (c Content) IsEmpty() bool {
	return c.Icon == "" && c.Name == "" && len(c.Lore) == 0 && c.Amount == 0
}

// Equal compares two contents field by field.
func (c Content) Equal(other Content) bool {
	return c.Icon == other.Icon &&
		c.Name == other.Name &&
		c.Amount == other.Amount &&
		slices.Equal(c.Lore, other.Lore)
}

func (c Content) clone() Content {
	c.Lore = slices.Clone(c.Lore)
	return c
}
