// Package storage wraps the abstract file system used for every pipeline
// file operation: probing for the configuration file, preparing the output
// directory, relocating analysis artifacts and writing run reports.
//
// Locations are afs URLs. Plain paths resolve to the local filesystem, and
// tests exercise the same code against mem://.
package storage

import (
	"bytes"
	"context"
	"path"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Store performs file operations through an afs.Service.
type Store struct {
	fs afs.Service
}

// New creates a Store backed by the default afs service, which routes
// locations by scheme and treats plain paths as local files.
func New() *Store {
	return &Store{fs: afs.New()}
}

// Exists reports whether location exists.
func (s *Store) Exists(ctx context.Context, location string) (bool, error) {
	return s.fs.Exists(ctx, location)
}

// Download returns the content of the file at location.
func (s *Store) Download(ctx context.Context, location string) ([]byte, error) {
	return s.fs.DownloadWithURL(ctx, location)
}

// Upload writes data to location, creating parent directories as needed.
func (s *Store) Upload(ctx context.Context, location string, data []byte) error {
	return s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data))
}

// EnsureDir creates dir with its parents unless it already exists. Calling it
// for an existing directory is not an error, so repeated runs reuse the same
// output directory.
func (s *Store) EnsureDir(ctx context.Context, dir string) error {
	exists, err := s.fs.Exists(ctx, dir)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.fs.Create(ctx, dir, file.DefaultDirOsMode, true)
}

// Relocate moves the artifact file into destDir, keeping its base name.
// It returns the destination the artifact now lives at.
func (s *Store) Relocate(ctx context.Context, artifact, destDir string) (string, error) {
	dest := url.Join(destDir, path.Base(artifact))
	if err := s.fs.Move(ctx, artifact, dest); err != nil {
		return "", err
	}
	return dest, nil
}
