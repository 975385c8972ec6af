package kv

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store on a single JSON snapshot file holding all keys.
// Every mutation rewrites the file in place and fsyncs, so a value either made
// it to disk in full or the previous snapshot is still intact.
type FileStore struct {
	mu   sync.RWMutex
	file *os.File
	data map[string]string
}

// OpenFileStore opens (or creates) the snapshot file at path.
func OpenFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	s := &FileStore{file: f}
	if err := s.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying file.
func (s *FileStore) Close() error { return s.file.Close() }

func (s *FileStore) load() error {
	info, err := s.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		s.data = map[string]string{}
		return s.flushLocked()
	}
	dec := json.NewDecoder(s.file)
	var data map[string]string
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("corrupt snapshot file: %w", err)
	}
	s.data = data
	return nil
}

func (s *FileStore) flushLocked() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(s.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.data); err != nil {
		return err
	}
	// truncate in case new content is shorter
	pos, _ := s.file.Seek(0, io.SeekCurrent)
	if err := s.file.Truncate(pos); err != nil {
		return err
	}
	return s.file.Sync()
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key and flushes the snapshot. On flush failure the
// in-memory map is rolled back so Get keeps serving the last persisted value.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.data[key]
	s.data[key] = value
	if err := s.flushLocked(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// Remove deletes key and flushes the snapshot.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.flushLocked(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

// Make sure we conform to the interface
var _ Store = (*FileStore)(nil)
