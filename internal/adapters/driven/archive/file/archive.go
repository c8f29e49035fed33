// Package file implements the document archive on the local
// filesystem: one write-once file per profile identifier, so extraction
// can be replayed without re-querying the external source.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
)

// documentExt is the archived document file extension.
const documentExt = ".pdf"

// Ensure Archive implements the interface.
var _ driven.DocumentArchive = (*Archive)(nil)

// Archive stores exported documents under a single directory,
// content-addressed by profile identifier.
type Archive struct {
	dir string
}

// NewArchive creates an archive rooted at dir. If dir is empty,
// defaults to ~/.tenure/documents.
func NewArchive(dir string) (*Archive, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".tenure", "documents")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	return &Archive{dir: dir}, nil
}

// Dir returns the archive root directory.
func (a *Archive) Dir() string {
	return a.dir
}

// Save stores a document keyed by its profile id. Existing content is
// never overwritten; a second save for the same profile returns
// domain.ErrAlreadyExists.
func (a *Archive) Save(_ context.Context, doc *domain.ProfileDocument) error {
	if doc == nil || doc.ProfileID == "" {
		return fmt.Errorf("%w: document must carry a profile id", domain.ErrInvalidInput)
	}

	path := a.path(doc.ProfileID)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, doc.ProfileID)
		}
		return fmt.Errorf("creating archive entry: %w", err)
	}

	if _, err := f.Write(doc.Content); err != nil {
		f.Close()
		// Remove the partial entry so a retry can write cleanly.
		os.Remove(path)
		return fmt.Errorf("writing archive entry: %w", err)
	}
	return f.Close()
}

// Get retrieves an archived document.
func (a *Archive) Get(_ context.Context, id domain.ProfileID) (*domain.ProfileDocument, error) {
	path := a.path(id)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading archive entry: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive entry: %w", err)
	}

	return &domain.ProfileDocument{
		ProfileID: id,
		Content:   content,
		FetchedAt: info.ModTime(),
	}, nil
}

// List returns all archived profile ids in lexicographic order.
func (a *Archive) List(_ context.Context) ([]domain.ProfileID, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("listing archive: %w", err)
	}

	var ids []domain.ProfileID
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, documentExt) {
			continue
		}
		ids = append(ids, domain.ProfileID(strings.TrimSuffix(name, documentExt)))
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (a *Archive) path(id domain.ProfileID) string {
	// Profile ids are opaque; take only the base name to keep entries
	// inside the archive directory.
	return filepath.Join(a.dir, filepath.Base(id.String())+documentExt)
}
