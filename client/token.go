package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// TokenStore persists the bearer token between sessions.
type TokenStore interface {
	Token() (string, error)
	SetToken(string) error
	Clear() error
}

// MemoryTokenStore keeps the token for the lifetime of the process.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Token() (string, error)  { return s.token, nil }
func (s *MemoryTokenStore) SetToken(t string) error { s.token = t; return nil }
func (s *MemoryTokenStore) Clear() error            { s.token = ""; return nil }

// FileTokenStore persists the token to a small JSON file under the
// key "token", the device-storage layout the app uses.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Token() (string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var blob map[string]string
	if err := json.Unmarshal(data, &blob); err != nil {
		return "", err
	}
	return blob["token"], nil
}

func (s *FileTokenStore) SetToken(t string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(map[string]string{"token": t})
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
