package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File-backed storage. One JSON object per session directory, rewritten
// whole on every Set. Single-user; no locking.

const dataFileName = "storage.json"

// Dir returns the directory holding the storage of session id under root.
func Dir(root, id string) string {
	return filepath.Join(root, "grocery", "session-"+id)
}

// FileKV stores all keys of one session in a single JSON file.
type FileKV struct {
	dir string
}

// NewFileKV returns a FileKV rooted at dir. The directory is created on the
// first Set.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Path is the file the values are written to.
func (kv *FileKV) Path() string { return filepath.Join(kv.dir, dataFileName) }

func (kv *FileKV) read() (map[string]string, error) {
	b, err := os.ReadFile(kv.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	m := map[string]string{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return m, nil
}

func (kv *FileKV) Get(key string) (string, bool, error) {
	m, err := kv.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set writes key through a temp file and rename so a crash never leaves a
// half-written file behind. An unreadable existing file is replaced.
func (kv *FileKV) Set(key, value string) error {
	m, err := kv.read()
	if err != nil {
		m = map[string]string{}
	}
	m[key] = value

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(kv.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(kv.dir, dataFileName+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmp.Name(), kv.Path()); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
