// Package credstore persists the session credential between runs.
package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// KeyToken is the persisted bearer credential.
	KeyToken = "token"

	// KeyEmail is the persisted identity.
	KeyEmail = "email"

	// FileName is the credential file name inside the config directory.
	FileName = "credentials.json"
)

// Store is the key-value persistence port the session store writes
// through. Values are plain strings; a missing key reads as absent, not
// as an error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// File is a Store backed by a flat JSON file with mode 0600.
type File struct {
	path string
}

// NewFile creates a file store inside dir. The file and directory are
// created lazily on first Set.
func NewFile(dir string) *File {
	return &File{path: filepath.Join(dir, FileName)}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get implements Store. Unreadable or malformed files read as empty.
func (f *File) Get(key string) (string, bool) {
	value, ok := f.read()[key]
	if value == "" {
		return "", false
	}
	return value, ok
}

// Set implements Store.
func (f *File) Set(key, value string) error {
	entries := f.read()
	entries[key] = value
	return f.write(entries)
}

// Delete implements Store. Deleting an absent key is a no-op.
func (f *File) Delete(key string) error {
	entries := f.read()
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

// Credential implements service.CredentialSource by reading the stored
// token. The session store persists the token before exposing a
// session, so the transport and the session always agree.
func (f *File) Credential() string {
	value, _ := f.Get(KeyToken)
	return value
}

func (f *File) read() map[string]string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return map[string]string{}
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return map[string]string{}
	}
	return entries
}

func (f *File) write(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
