// Package tui is the interactive grocery list.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/grocery/internal/groceries"
	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/ui"
	"github.com/idilsaglam/grocery/internal/view"
)

const (
	minQuantity = 1
	maxQuantity = 10

	emptyNameAlert = "Please fill in the item name"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.Row(it.Quantity, it.Name, it.Checked))
}

// Model is the Bubble Tea model. Every change goes through the store, which
// persists it before the next render.
type Model struct {
	store  *groceries.Store
	sorter *view.Sorter
	mode   view.SortMode
	keys   keyMap

	list list.Model

	// entry form
	adding   bool
	ti       textinput.Model
	quantity int
	alert    string // rejected input, shown until the next key

	status string // last persistence error
	width  int
	height int
}

// New builds the model showing store's list in mode.
func New(store *groceries.Store, sorter *view.Sorter, mode view.SortMode) Model {
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "item name..."
	ti.CharLimit = 200

	m := Model{
		store:    store,
		sorter:   sorter,
		mode:     mode,
		keys:     keys,
		list:     l,
		ti:       ti,
		quantity: minQuantity,
		width:    80,
		height:   24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.adding {
		return m.updateForm(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(kmsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Add):
		m.adding = true
		m.alert = ""
		m.ti.SetValue("")
		m.resize()
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(kmsg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.apply(m.store.Toggle(it.ID))
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.apply(m.store.Delete(it.ID))
		}
		return m, nil
	case key.Matches(kmsg, m.keys.Sort):
		m.mode = m.mode.Next()
		m.refresh()
		return m, nil
	case key.Matches(kmsg, m.keys.Clear):
		m.apply(m.store.ClearAll())
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, m.keys.Submit):
			_, err := m.store.Add(m.ti.Value(), m.quantity)
			if errors.Is(err, model.ErrEmptyName) {
				m.alert = emptyNameAlert
				return m, nil
			}
			m.apply(err)
			m.closeForm()
			return m, nil
		case key.Matches(kmsg, m.keys.Cancel):
			m.closeForm()
			return m, nil
		case key.Matches(kmsg, m.keys.QtyUp):
			m.quantity = min(m.quantity+1, maxQuantity)
			return m, nil
		case key.Matches(kmsg, m.keys.QtyDown):
			m.quantity = max(m.quantity-1, minQuantity)
			return m, nil
		}
		m.alert = ""
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeForm() {
	m.adding = false
	m.alert = ""
	m.quantity = minQuantity
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// apply records the outcome of a store operation and re-renders.
func (m *Model) apply(err error) {
	m.status = ""
	if err != nil {
		m.status = err.Error()
	}
	m.refresh()
}

// refresh rebuilds the visible rows from the store and the sort mode.
func (m *Model) refresh() {
	rows := m.sorter.Apply(m.store.Items(), m.mode)
	li := make([]list.Item, len(rows))
	for i, it := range rows {
		li[i] = listItem{it}
	}
	idx := m.list.Index()
	m.list.SetItems(li)
	if n := len(li); n > 0 && idx >= n {
		m.list.Select(n - 1)
	}
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.Item, ok
}

// header, form, actions and footer around the list
const chromeHeight = 10

func (m *Model) resize() {
	h := m.height - chromeHeight
	if m.adding {
		h -= 2
	}
	m.list.SetSize(max(m.width-4, 20), max(h, 3))
}

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	b.WriteString(t.Title.Render("My Grocery Notes 📝"))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(t.Accent.Render("What are we buying today?"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n", t.Accent.Render(fmt.Sprintf("‹%2d›", m.quantity)), m.ti.View())
		if m.alert != "" {
			b.WriteString(t.Warning.Render(t.SymWarn + " " + m.alert))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(t.Muted.Render("press a to add an item"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.list.View())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s   %s\n",
		t.Accent.Render(m.mode.Label()),
		t.Muted.Render("[s] change"),
		t.Muted.Render("[C] clear list"),
	)

	s := view.Summarize(m.store.Items())
	fmt.Fprintf(&b, "%s  %s", s.String(), t.Muted.Render(ui.ProgressBar(s.Percentage, 20)))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(t.Error.Render(t.SymFail + " " + m.status))
	}
	return ui.Panel(b.String())
}
