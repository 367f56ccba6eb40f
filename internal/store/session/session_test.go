package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/grocery/internal/model"
)

type brokenKV struct{}

func (brokenKV) Get(string) (string, bool, error) { return "", false, errors.New("boom") }
func (brokenKV) Set(string, string) error         { return errors.New("boom") }

func backends(t *testing.T) map[string]KV {
	return map[string]KV{
		"memory": NewMemoryKV(),
		"file":   NewFileKV(Dir(t.TempDir(), "test")),
	}
}

func TestRoundTrip(t *testing.T) {
	lists := [][]model.Item{
		{},
		{{ID: 1, Name: "Rice", Quantity: 5}},
		{
			{ID: 1700000000000, Name: "Kopi Bubuk", Quantity: 5, Checked: true},
			{ID: 1700000000001, Name: "Gula Pasir", Quantity: 3},
			{ID: 1700000000002, Name: "Air Mineral", Quantity: 1},
		},
	}
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			a := NewAdapter(kv, nil)
			for _, items := range lists {
				require.NoError(t, a.Save(items))
				assert.Equal(t, items, a.Load())
			}
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got := NewAdapter(kv, nil).Load()
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoadMalformedValue(t *testing.T) {
	for _, raw := range []string{"{not json", `{"id":1}`, `[{"id":"x"}]`, "null"} {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set(Key, raw))
		got := NewAdapter(kv, nil).Load()
		assert.NotNil(t, got, "value %q", raw)
		assert.Empty(t, got, "value %q", raw)
	}
}

func TestLoadBackendErrorIsSoft(t *testing.T) {
	a := NewAdapter(brokenKV{}, nil)
	assert.Empty(t, a.Load())
	assert.Error(t, a.Save(nil))
}

func TestSaveWireFormat(t *testing.T) {
	kv := NewMemoryKV()
	a := NewAdapter(kv, nil)

	require.NoError(t, a.Save(nil))
	raw, ok, err := kv.Get(Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)

	require.NoError(t, a.Save([]model.Item{{ID: 7, Name: "Salt", Quantity: 1, Checked: true}}))
	raw, _, _ = kv.Get(Key)
	assert.JSONEq(t, `[{"id":7,"name":"Salt","quantity":1,"checked":true}]`, raw)
}

func TestSaveReplaces(t *testing.T) {
	a := NewAdapter(NewMemoryKV(), nil)
	require.NoError(t, a.Save([]model.Item{{ID: 1, Name: "a", Quantity: 1}, {ID: 2, Name: "b", Quantity: 1}}))
	require.NoError(t, a.Save([]model.Item{{ID: 3, Name: "c", Quantity: 1}}))
	assert.Equal(t, []model.Item{{ID: 3, Name: "c", Quantity: 1}}, a.Load())
}

func TestFileKVCorruptFile(t *testing.T) {
	dir := Dir(t.TempDir(), "corrupt")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataFileName), []byte("garbage"), 0o600))

	kv := NewFileKV(dir)
	_, _, err := kv.Get(Key)
	assert.Error(t, err)

	a := NewAdapter(kv, nil)
	assert.Empty(t, a.Load())
	require.NoError(t, a.Save([]model.Item{{ID: 1, Name: "Rice", Quantity: 5}}))
	assert.Len(t, a.Load(), 1)
}

func TestFileKVSessionsAreIsolated(t *testing.T) {
	root := t.TempDir()
	one := NewAdapter(NewFileKV(Dir(root, "1")), nil)
	two := NewAdapter(NewFileKV(Dir(root, "2")), nil)

	require.NoError(t, one.Save([]model.Item{{ID: 1, Name: "Rice", Quantity: 5}}))
	assert.Len(t, one.Load(), 1)
	assert.Empty(t, two.Load())
}

func TestFileKVKeepsOtherKeys(t *testing.T) {
	kv := NewFileKV(Dir(t.TempDir(), "keys"))
	require.NoError(t, kv.Set("other", "x"))
	require.NoError(t, NewAdapter(kv, nil).Save(nil))

	v, ok, err := kv.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
