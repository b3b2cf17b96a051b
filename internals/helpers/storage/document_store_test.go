package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStagePromote(t *testing.T) {
	store, err := NewLocalDocumentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalDocumentStore: %v", err)
	}

	staged, err := store.Stage(strings.NewReader("curriculum body"), "syllabus.pdf")
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if _, err := os.Stat(staged.Path); err != nil {
		t.Fatalf("staged file missing: %v", err)
	}
	if filepath.Base(filepath.Dir(staged.Path)) != "temp_uploads" {
		t.Fatalf("staged file not in temp area: %s", staged.Path)
	}

	want := store.FinalRef(staged, "MATH_123")
	ref, err := store.Promote(staged, "MATH_123")
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if ref != want {
		t.Fatalf("Promote ref %q != FinalRef %q", ref, want)
	}
	if !strings.HasSuffix(ref, "MATH_123.pdf") {
		t.Fatalf("extension not preserved: %s", ref)
	}

	body, err := os.ReadFile(ref)
	if err != nil {
		t.Fatalf("read promoted: %v", err)
	}
	if string(body) != "curriculum body" {
		t.Fatalf("content changed across promote: %q", body)
	}
	if _, err := os.Stat(staged.Path); !os.IsNotExist(err) {
		t.Fatal("staged copy must be gone after promote")
	}
}

func TestDiscard(t *testing.T) {
	store, err := NewLocalDocumentStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	staged, err := store.Stage(strings.NewReader("x"), "doc.docx")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Discard(staged); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if _, err := os.Stat(staged.Path); !os.IsNotExist(err) {
		t.Fatal("staged file must be removed")
	}
	// discarding twice is fine
	if err := store.Discard(staged); err != nil {
		t.Fatalf("second Discard: %v", err)
	}
	if err := store.Discard(nil); err != nil {
		t.Fatalf("nil Discard: %v", err)
	}
}

// When work rolls back after a promote, the promoted copy must be removable
// by reference; the staged path is gone by then.
func TestRemovePromoted(t *testing.T) {
	store, err := NewLocalDocumentStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	staged, err := store.Stage(strings.NewReader("logo bytes"), "logo.png")
	if err != nil {
		t.Fatal(err)
	}
	ref, err := store.Promote(staged, "logo-1-SCH")
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}

	if err := store.Remove(ref); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(ref); !os.IsNotExist(err) {
		t.Fatal("promoted file must be removed")
	}
	// removing twice is fine, as is an empty ref
	if err := store.Remove(ref); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Fatalf("empty Remove: %v", err)
	}
}
