// Package session persists the grocery list in session-scoped key-value
// storage. A session lives as long as the terminal that started it (file
// backend) or the process (memory backend).
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/grocery/internal/logger"
	"github.com/idilsaglam/grocery/internal/model"
)

// Key is the slot the list is stored under.
const Key = "GROCERY-KEY"

// KV is a string key-value store. Get reports ok=false for a missing key.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Adapter stores the whole list as a JSON array under Key.
type Adapter struct {
	kv  KV
	log *slog.Logger
}

// NewAdapter wraps kv. A nil logger discards output.
func NewAdapter(kv KV, log *slog.Logger) *Adapter {
	if log == nil {
		log = logger.Discard()
	}
	return &Adapter{kv: kv, log: log}
}

// Load returns the stored list, or an empty list when nothing usable is
// stored. Errors are logged and swallowed.
func (a *Adapter) Load() []model.Item {
	raw, ok, err := a.kv.Get(Key)
	if err != nil {
		a.log.Warn("session read failed, starting empty", "key", Key, "err", err)
		return []model.Item{}
	}
	if !ok {
		return []model.Item{}
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		a.log.Debug("stored list is malformed, starting empty", "key", Key, "err", err)
		return []model.Item{}
	}
	if items == nil {
		// a stored "null"
		return []model.Item{}
	}
	return items
}

// Save overwrites the stored list with items.
func (a *Adapter) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := a.kv.Set(Key, string(b)); err != nil {
		return fmt.Errorf("set %s: %w", Key, err)
	}
	return nil
}
