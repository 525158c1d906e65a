package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored file does not exist or the requested
// name would escape the store directory.
var ErrNotFound = errors.New("file not found")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileStore saves uploaded files in a single flat directory. Storage keys are
// generated server-side, so client filenames never collide or traverse paths.
type FileStore struct {
	dir string
}

// NewFileStore creates the store directory if needed and returns a store
// scoped to it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// SanitizeFilename reduces a client-submitted filename to a safe display
// name: path components are stripped and anything outside [A-Za-z0-9._-]
// becomes an underscore. Returns "" if nothing safe remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return ""
	}
	return name
}

// Save writes the content to a new file under a generated storage key and
// returns the key. The sanitized client filename only contributes its
// extension.
func (fs *FileStore) Save(r io.Reader, sanitizedName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(sanitizedName))
	key := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(fs.dir, key))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return key, nil
}

// Path resolves a stored filename to its on-disk path, refusing any name
// that is not a plain file name inside the store directory.
func (fs *FileStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrNotFound
	}
	path := filepath.Join(fs.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// Remove deletes a stored file. Used to compensate when the item record
// cannot be written after its image was already saved.
func (fs *FileStore) Remove(name string) error {
	path, err := fs.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
