package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Store keeps transaction attachments on local disk under a single uploads
// root and derives the public URLs they are served back from. It is created
// once at startup and shared by all requests.
type Store struct {
	dir     string
	baseURL string // optional fixed base; empty means derive from the request
}

// New ensures the uploads directory exists. baseURL may be empty, in which
// case URLs are derived from the inbound request's scheme and host.
func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// UniqueName prefixes the original filename with the current unix-milli
// timestamp so concurrent uploads of the same file never collide.
func (s *Store) UniqueName(original string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(original))
}

// Save writes the uploaded part to disk and returns the stored filename.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := s.UniqueName(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// URL derives the public address of a stored filename. requestBase is the
// scheme://host of the inbound request, used when no fixed base is set.
func (s *Store) URL(requestBase, filename string) string {
	base := s.baseURL
	if base == "" {
		base = strings.TrimRight(requestBase, "/")
	}
	return base + "/uploads/" + filename
}

// FilenameFromURL recovers the stored filename from a documentation URL.
func (s *Store) FilenameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return path.Base(raw)
	}
	return path.Base(u.Path)
}

// Remove deletes a stored file. Callers that must not block on cleanup run
// it through RemoveAsync instead.
func (s *Store) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}

// RemoveAsync deletes a stored file in the background. Failure is logged and
// never surfaces to the caller: the primary operation already succeeded.
func (s *Store) RemoveAsync(filename string) {
	go func() {
		if err := s.Remove(filename); err != nil {
			log.Printf("Failed to delete attachment %s: %v", filename, err)
		}
	}()
}
