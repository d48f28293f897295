// Package storage is the blob-store collaborator: attachment bodies go
// here, only metadata rows live in the database.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

type BlobStore interface {
	// Store persists the bytes and returns an opaque handle. The handle
	// carries no user-controlled path components.
	Store(data []byte, originalName string) (string, error)
	Retrieve(handle string) ([]byte, error)
	Delete(handle string) error
}

// FilesystemStore keeps blobs in a flat directory under random hex names,
// preserving only the original extension.
type FilesystemStore struct {
	dir string
}

func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "blob directory unavailable", err)
	}
	return &FilesystemStore{dir: dir}, nil
}

func (s *FilesystemStore) Store(data []byte, originalName string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "random name generation failed", err)
	}

	handle := hex.EncodeToString(buf)
	if ext := sanitizeExt(filepath.Ext(originalName)); ext != "" {
		handle += ext
	}

	if err := os.WriteFile(filepath.Join(s.dir, handle), data, 0o640); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "blob write failed", err)
	}
	return handle, nil
}

func (s *FilesystemStore) Retrieve(handle string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(handle)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrFileNotFound
		}
		return nil, errors.Wrap(errors.CodeInternal, "blob read failed", err)
	}
	return data, nil
}

func (s *FilesystemStore) Delete(handle string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(handle)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.CodeInternal, "blob delete failed", err)
	}
	return nil
}

// sanitizeExt keeps a short alphanumeric extension, nothing else.
func sanitizeExt(ext string) string {
	if ext == "" || len(ext) > 10 {
		return ""
	}
	trimmed := strings.TrimPrefix(ext, ".")
	for _, r := range trimmed {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum {
			return ""
		}
	}
	return "." + strings.ToLower(trimmed)
}
