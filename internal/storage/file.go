package storage

import (
	"fmt"
	"io"
	"os"
)

// FileStore - Store implementation over a single snapshot file.
type FileStore struct{}

// NewFileStore - creates the file-backed store
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Save - writes the snapshot atomically: the data goes to a temporary file
// first and replaces the destination with a rename, so an interrupted write
// never leaves a corrupt snapshot behind. An existing file is overwritten.
func (s *FileStore) Save(path string, snap Snapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// Load - reads and decodes the snapshot at path.
func (s *FileStore) Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return Unmarshal(data)
}
