// file: internals/helpers/storage/document_store.go
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =======================================================================
   Document/blob store (external collaborator)

   Curriculum documents land in a temp area first and are only promoted to
   the permanent area when registration reaches Stored. Every other exit
   discards the staged file.
======================================================================= */

// StagedDocument is a handle to a not-yet-committed upload.
type StagedDocument struct {
	Path     string
	OrigName string
}

// DocumentStore hands out opaque references for committed documents.
type DocumentStore interface {
	Stage(r io.Reader, origName string) (*StagedDocument, error)
	Promote(staged *StagedDocument, finalName string) (string, error)
	Discard(staged *StagedDocument) error
	// FinalRef is the reference Promote would return, computable before the
	// move happens (downstream services record it ahead of the promote).
	FinalRef(staged *StagedDocument, finalName string) string
	// Remove deletes an already-promoted document, for callers whose
	// surrounding work rolled back after the promote.
	Remove(ref string) error
}

// LocalDocumentStore keeps documents on the local disk under baseDir, with a
// temp_uploads staging area next to the permanent uploads directory.
type LocalDocumentStore struct {
	baseDir string
}

func NewLocalDocumentStore(baseDir string) (*LocalDocumentStore, error) {
	for _, dir := range []string{filepath.Join(baseDir, "temp_uploads"), filepath.Join(baseDir, "uploads")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &LocalDocumentStore{baseDir: baseDir}, nil
}

func (s *LocalDocumentStore) Stage(r io.Reader, origName string) (*StagedDocument, error) {
	name := fmt.Sprintf("document-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], safeExt(origName))
	path := filepath.Join(s.baseDir, "temp_uploads", name)

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return &StagedDocument{Path: path, OrigName: origName}, nil
}

// Promote moves the staged file into the permanent area and returns its
// opaque reference.
func (s *LocalDocumentStore) Promote(staged *StagedDocument, finalName string) (string, error) {
	final := s.FinalRef(staged, finalName)
	if err := os.Rename(staged.Path, final); err != nil {
		return "", err
	}
	return final, nil
}

func (s *LocalDocumentStore) FinalRef(staged *StagedDocument, finalName string) string {
	return filepath.Join(s.baseDir, "uploads", finalName+safeExt(staged.OrigName))
}

func (s *LocalDocumentStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(ref)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalDocumentStore) Discard(staged *StagedDocument) error {
	if staged == nil || staged.Path == "" {
		return nil
	}
	err := os.Remove(staged.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
