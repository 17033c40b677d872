// Package storage manages the on-disk artifacts: uploaded originals and the
// per-document page directories holding one rendered image per page.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	uploadsDir = "uploads"
	pagesDir   = "document_pages"
)

// Store is a local filesystem blob store rooted at DataDir. All paths handed
// out are relative to the root so rows stay portable across hosts.
type Store struct {
	root   string
	logger *slog.Logger
}

func NewStore(root string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	for _, dir := range []string{uploadsDir, pagesDir} {
		if err := os.MkdirAll(filepath.Join(abs, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir: %w", dir, err)
		}
	}
	return &Store{root: abs, logger: logger}, nil
}

// Abs resolves a stored relative locator to an absolute path.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, rel)
}

// SaveUpload writes the uploaded bytes and returns the relative storage path
// plus the sha-256 content hash.
func (s *Store) SaveUpload(filename string, data []byte) (string, []byte, error) {
	sum := sha256.Sum256(data)
	rel := filepath.Join(uploadsDir, hex.EncodeToString(sum[:8])+"_"+sanitize(filename))
	if err := os.WriteFile(s.Abs(rel), data, 0o644); err != nil {
		s.logger.Error("failed to write upload", "filename", filename, "error", err)
		return "", nil, err
	}
	s.logger.Info("upload stored", "path", rel, "bytes", len(data))
	return rel, sum[:], nil
}

// PageDir returns (and creates) the page directory for a document.
func (s *Store) PageDir(documentID uuid.UUID) (string, error) {
	rel := filepath.Join(pagesDir, documentID.String())
	if err := os.MkdirAll(s.Abs(rel), 0o755); err != nil {
		return "", err
	}
	return rel, nil
}

// PageImagePath returns the deterministic relative locator for a page image.
func PageImagePath(documentID uuid.UUID, pageNum int) string {
	return filepath.Join(pagesDir, documentID.String(), fmt.Sprintf("page_%d.png", pageNum))
}

// WritePageImage persists a rendered page image and returns its locator.
func (s *Store) WritePageImage(documentID uuid.UUID, pageNum int, data []byte) (string, error) {
	if _, err := s.PageDir(documentID); err != nil {
		return "", err
	}
	rel := PageImagePath(documentID, pageNum)
	if err := os.WriteFile(s.Abs(rel), data, 0o644); err != nil {
		return "", err
	}
	return rel, nil
}

// CopyPageImage copies an existing file (absolute path) into the page
// directory, used by the image adapter to keep the source as the artifact.
func (s *Store) CopyPageImage(documentID uuid.UUID, pageNum int, srcAbs string) (string, error) {
	if _, err := s.PageDir(documentID); err != nil {
		return "", err
	}
	rel := PageImagePath(documentID, pageNum)

	src, err := os.Open(srcAbs)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(s.Abs(rel))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return rel, nil
}

// ClearPageDir removes all artifacts for a document, used before a
// preprocess retry regenerates them.
func (s *Store) ClearPageDir(documentID uuid.UUID) error {
	rel := filepath.Join(pagesDir, documentID.String())
	if err := os.RemoveAll(s.Abs(rel)); err != nil {
		return err
	}
	return nil
}

func sanitize(filename string) string {
	base := filepath.Base(filename)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
