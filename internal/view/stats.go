package view

import (
	"fmt"

	"github.com/idilsaglam/grocery/internal/model"
)

// Summary is the footer statistic for a list.
type Summary struct {
	Total      int
	Checked    int
	Percentage int // floor(Checked / Total * 100), 0 for an empty list
}

// Summarize counts items and checked items.
func Summarize(items []model.Item) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.Checked {
			s.Checked++
		}
	}
	if s.Total > 0 {
		s.Percentage = s.Checked * 100 / s.Total
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d item(s) in the list, %d purchased (%d%%)", s.Total, s.Checked, s.Percentage)
}
