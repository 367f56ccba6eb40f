package groceries

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/idilsaglam/grocery/internal/logger"
	"github.com/idilsaglam/grocery/internal/model"
)

// Persister loads and saves the full list. Load never fails; an unreadable
// list comes back empty.
type Persister interface {
	Load() []model.Item
	Save(items []model.Item) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for new item ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.ids.now = now }
}

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store is the single source of truth for the list. It is not safe for
// concurrent use; callers run one operation at a time.
type Store struct {
	items []model.Item
	p     Persister
	ids   idSource
	log   *slog.Logger
}

// New loads the list through p and returns a Store around it.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		p:   p,
		ids: idSource{now: time.Now},
		log: logger.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	s.items = p.Load()
	if s.items == nil {
		s.items = Empty()
	}
	s.ids.last = maxID(s.items)
	s.log.Debug("list loaded", "items", len(s.items))
	return s
}

// Items returns a copy of the list in input order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of items.
func (s *Store) Len() int { return len(s.items) }

// Add appends a new unchecked item. An empty name is rejected with
// model.ErrEmptyName and nothing is written.
func (s *Store) Add(name string, quantity int) (model.Item, error) {
	it, err := model.NewItem(0, name, quantity)
	if err != nil {
		return model.Item{}, err
	}
	it.ID = s.ids.next()
	s.log.Debug("add", "id", it.ID, "name", it.Name, "quantity", it.Quantity)
	return it, s.commit(Append(s.items, it))
}

// Delete removes the item with the given id. Unknown ids leave the list as is.
func (s *Store) Delete(id int64) error {
	s.log.Debug("delete", "id", id)
	return s.commit(Remove(s.items, id))
}

// Toggle flips the checked state of the item with the given id.
func (s *Store) Toggle(id int64) error {
	s.log.Debug("toggle", "id", id)
	return s.commit(Flip(s.items, id))
}

// ClearAll empties the list.
func (s *Store) ClearAll() error {
	s.log.Debug("clear all", "dropped", len(s.items))
	return s.commit(Empty())
}

// commit replaces the list and writes it out. The new list is kept even
// when the write fails.
func (s *Store) commit(next []model.Item) error {
	s.items = next
	if err := s.p.Save(next); err != nil {
		s.log.Error("save failed", "items", len(next), "err", err)
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
