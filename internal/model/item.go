package model

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when an item is created without a name.
var ErrEmptyName = errors.New("item name cannot be empty")

// Item is the domain model for a grocery entry.
// The json tags are the persisted layout; keep them stable.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Checked  bool   `json:"checked"`
}

// NewItem builds an unchecked item. The name is trimmed and must not be empty.
func NewItem(id int64, name string, quantity int) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	return Item{ID: id, Name: name, Quantity: quantity}, nil
}

// Toggled returns a copy of the item with Checked flipped.
func (it Item) Toggled() Item {
	it.Checked = !it.Checked
	return it
}
