package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/guest-list-admin/models"
)

// fileCredentialStore keeps the credential in a small JSON document of the
// form {"authToken": "<token>"}.
type fileCredentialStore struct {
	path string
	mu   sync.Mutex
}

// NewFileCredentialStore returns a [CredentialStore] backed by the JSON file
// at path. The file is created on the first Save.
func NewFileCredentialStore(path string) CredentialStore {
	return &fileCredentialStore{path: path}
}

func (s *fileCredentialStore) Load(_ context.Context) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Credential{}, ErrCredentialNotFound
		}
		return models.Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	var doc map[string]string
	if err = json.Unmarshal(data, &doc); err != nil {
		return models.Credential{}, fmt.Errorf("decode credential file: %w", err)
	}

	credential := models.NewCredential(doc[models.CredentialName])
	if credential.IsZero() {
		return models.Credential{}, ErrCredentialNotFound
	}
	return credential, nil
}

func (s *fileCredentialStore) Save(_ context.Context, credential models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(map[string]string{models.CredentialName: credential.AccessToken}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	// atomic replace
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace credential file: %w", err)
	}

	return nil
}

func (s *fileCredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
