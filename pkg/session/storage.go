package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStorage is the durable client-side store for the token pair. Every
// mutation replaces both entries in a single atomic write so that a login
// racing a 401-triggered clear resolves last-writer-wins.
type TokenStorage interface {
	// Get returns the value for key, or "" when absent.
	Get(key string) string
	// SetTokens stores both tokens at once.
	SetTokens(access, refresh string) error
	// Clear removes both entries. Clearing an empty store is a no-op.
	Clear() error
}

// MemoryStorage keeps the token pair in memory. Used by tests and by callers
// that do not want credentials on disk.
type MemoryStorage struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{tokens: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokens[key]
}

func (m *MemoryStorage) SetTokens(access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = map[string]string{
		AccessTokenKey:  access,
		RefreshTokenKey: refresh,
	}
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = map[string]string{}
	return nil
}

// FileStorage persists the token pair as a JSON file. Reads go to disk every
// time so that concurrent processes and the 401 handler observe each other;
// writes go through a temp file and rename so a mutation is one atomic write.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage stores credentials at path, creating parent directories as
// needed on first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(key string) string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}

	var tokens map[string]string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return ""
	}
	return tokens[key]
}

func (f *FileStorage) SetTokens(access, refresh string) error {
	return f.write(map[string]string{
		AccessTokenKey:  access,
		RefreshTokenKey: refresh,
	})
}

func (f *FileStorage) Clear() error {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (f *FileStorage) write(tokens map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
