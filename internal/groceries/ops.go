// Package groceries holds the grocery list state and the operations that
// change it. Every operation returns a new slice; items held by a previous
// slice are never modified.
package groceries

import "github.com/idilsaglam/grocery/internal/model"

// Append returns a new list with it added at the end.
func Append(items []model.Item, it model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

// Remove returns a new list without the item whose ID is id.
// The result has the same contents as items when id is not present.
func Remove(items []model.Item, id int64) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Flip returns a new list where the item whose ID is id has its checked
// state inverted. Other items are copied unchanged.
func Flip(items []model.Item, id int64) []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		if it.ID == id {
			it = it.Toggled()
		}
		out[i] = it
	}
	return out
}

// Empty returns an empty, non-nil list.
func Empty() []model.Item { return []model.Item{} }

func maxID(items []model.Item) int64 {
	var m int64
	for _, it := range items {
		if it.ID > m {
			m = it.ID
		}
	}
	return m
}
