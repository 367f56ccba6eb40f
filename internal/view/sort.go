// Package view computes read-only projections of the grocery list: the
// sorted or filtered rows shown to the user and the progress summary.
package view

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/grocery/internal/model"
)

// ErrUnknownSortMode is returned by ParseSortMode for unrecognised names.
var ErrUnknownSortMode = errors.New("unknown sort mode")

// SortMode selects how the list is projected for display.
type SortMode int

const (
	SortInput   SortMode = iota // insertion order
	SortName                    // by name, collated
	SortChecked                 // purchased items only
)

var sortModes = []SortMode{SortInput, SortName, SortChecked}

// ParseSortMode maps "input", "name" or "checked" to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	for _, m := range sortModes {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return SortInput, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

func (m SortMode) String() string {
	switch m {
	case SortInput:
		return "input"
	case SortName:
		return "name"
	case SortChecked:
		return "checked"
	}
	return fmt.Sprintf("SortMode(%d)", int(m))
}

// Label is the text shown in the sort selector.
func (m SortMode) Label() string {
	switch m {
	case SortInput:
		return "Sort by input order"
	case SortName:
		return "Sort by item name"
	case SortChecked:
		return "Sort by checked"
	}
	return m.String()
}

// Next cycles through the modes in selector order.
func (m SortMode) Next() SortMode {
	i := slices.Index(sortModes, m)
	return sortModes[(i+1)%len(sortModes)]
}

// Sorter applies a SortMode using locale-aware name comparison.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	col *collate.Collator
}

// NewSorter returns a Sorter collating names for the given locale.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// Compare orders two names the way SortName does.
func (s *Sorter) Compare(a, b string) int {
	return s.col.CompareString(a, b)
}

// Apply returns the rows to display for mode. It always returns a new slice
// and never touches items.
//
// SortChecked filters: unchecked items are left out rather than moved last.
func (s *Sorter) Apply(items []model.Item, mode SortMode) []model.Item {
	switch mode {
	case SortInput:
		return slices.Clone(items)
	case SortName:
		out := slices.Clone(items)
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return s.col.CompareString(a.Name, b.Name)
		})
		return out
	case SortChecked:
		out := make([]model.Item, 0, len(items))
		for _, it := range items {
			if it.Checked {
				out = append(out, it)
			}
		}
		return out
	}
	panic(fmt.Sprintf("view: unhandled %v", mode))
}
