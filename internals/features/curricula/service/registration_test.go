package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"currimon_backend/internals/features/curricula/dto"
	"currimon_backend/internals/helpers/extractor"
	"currimon_backend/internals/helpers/storage"
)

/* ===== fakes ===== */

type fakeStore struct {
	discarded int
	promoted  int
	removed   int
}

func (f *fakeStore) Stage(r io.Reader, origName string) (*storage.StagedDocument, error) {
	return &storage.StagedDocument{Path: "/tmp/fake", OrigName: origName}, nil
}

func (f *fakeStore) Promote(staged *storage.StagedDocument, finalName string) (string, error) {
	f.promoted++
	return "uploads/" + finalName, nil
}

func (f *fakeStore) Discard(staged *storage.StagedDocument) error {
	f.discarded++
	return nil
}

func (f *fakeStore) FinalRef(staged *storage.StagedDocument, finalName string) string {
	return "uploads/" + finalName
}

func (f *fakeStore) Remove(ref string) error {
	f.removed++
	return nil
}

type fakeExtractor struct {
	res   *extractor.Result
	err   error
	calls int
}

func (f *fakeExtractor) AddCurriculum(ctx context.Context, req extractor.Request) (*extractor.Result, error) {
	f.calls++
	return f.res, f.err
}

func passChain(ctx context.Context, educationType, levelType, sectionType, classLabel string) error {
	return nil
}

func autoRequest() dto.CreateCurriculumRequest {
	return dto.CreateCurriculumRequest{
		Name: "Algebra", Code: "ALG", EducationType: "GEN", LevelType: "PRI",
		SectionType: "A", ClassType: "1", Duration: "1y",
		IssuedOn: "2026-01-15", InputMethod: "Auto",
	}
}

/* ===== state machine ===== */

func TestRegisterRejectsBadIssueDateAndDiscards(t *testing.T) {
	store := &fakeStore{}
	svc := NewRegistrationService(nil, store, nil)

	staged := &storage.StagedDocument{Path: "/tmp/fake", OrigName: "doc.pdf"}
	outcome, err := svc.Register(context.Background(), Input{
		Req: dto.CreateCurriculumRequest{
			Name: "Algebra", Code: "ALG", EducationType: "GEN", LevelType: "PRI",
			SectionType: "A", ClassType: "1", Duration: "1y",
			IssuedOn: "not-a-date", InputMethod: "Manual", Structure: "[]",
		},
		Staged: staged,
	})
	if outcome.State != StateRejected {
		t.Fatalf("expected Rejected, got %s", outcome.State)
	}
	var re *RejectionError
	if !errors.As(err, &re) || re.Field != "issued_on" {
		t.Fatalf("expected issued_on rejection, got %v", err)
	}
	if store.discarded != 1 {
		t.Fatalf("staged document must be discarded on rejection, discards=%d", store.discarded)
	}
	if store.promoted != 0 {
		t.Fatal("nothing may be promoted on rejection")
	}
}

// A transport failure on the extraction service is a Failed exit: nothing is
// promoted and the staged document is cleaned up.
func TestRegisterAutoExtractorErrorFailsAndDiscards(t *testing.T) {
	store := &fakeStore{}
	ex := &fakeExtractor{err: errors.New("connection refused")}
	svc := &RegistrationService{Store: store, Extractor: ex, validateChain: passChain}

	staged := &storage.StagedDocument{Path: "/tmp/fake", OrigName: "doc.pdf"}
	outcome, err := svc.Register(context.Background(), Input{Req: autoRequest(), Staged: staged})
	if outcome.State != StateFailed {
		t.Fatalf("expected Failed, got %s", outcome.State)
	}
	if err == nil {
		t.Fatal("transport error must surface to the caller")
	}
	if ex.calls != 1 {
		t.Fatalf("extractor must be called once, got %d", ex.calls)
	}
	if store.discarded != 1 {
		t.Fatalf("staged document must be discarded on failure, discards=%d", store.discarded)
	}
	if store.promoted != 0 {
		t.Fatal("nothing may be promoted on failure")
	}
}

// A non-success verdict from the extraction service is relayed verbatim, also
// as a Failed exit with cleanup.
func TestRegisterAutoExtractorRejectionRelayed(t *testing.T) {
	store := &fakeStore{}
	ex := &fakeExtractor{res: &extractor.Result{StatusCode: 400, Type: "error", Message: "Duplicate code."}}
	svc := &RegistrationService{Store: store, Extractor: ex, validateChain: passChain}

	staged := &storage.StagedDocument{Path: "/tmp/fake", OrigName: "doc.pdf"}
	outcome, err := svc.Register(context.Background(), Input{Req: autoRequest(), Staged: staged})
	if err != nil {
		t.Fatalf("a relayed verdict is not a transport error: %v", err)
	}
	if outcome.State != StateFailed {
		t.Fatalf("expected Failed, got %s", outcome.State)
	}
	if outcome.Message != "Duplicate code." {
		t.Fatalf("downstream message must be relayed verbatim, got %q", outcome.Message)
	}
	if store.discarded != 1 || store.promoted != 0 {
		t.Fatalf("expected discard without promote, discards=%d promotes=%d",
			store.discarded, store.promoted)
	}
}

// Success promotes the staged document and discards nothing.
func TestRegisterAutoSuccessPromotes(t *testing.T) {
	store := &fakeStore{}
	ex := &fakeExtractor{res: &extractor.Result{StatusCode: 200, Type: "success", Message: "Curriculum added successfully"}}
	svc := &RegistrationService{Store: store, Extractor: ex, validateChain: passChain}

	staged := &storage.StagedDocument{Path: "/tmp/fake", OrigName: "doc.pdf"}
	outcome, err := svc.Register(context.Background(), Input{Req: autoRequest(), Staged: staged})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if outcome.State != StateStored {
		t.Fatalf("expected Stored, got %s", outcome.State)
	}
	if store.promoted != 1 || store.discarded != 0 {
		t.Fatalf("expected one promote and no discard, promotes=%d discards=%d",
			store.promoted, store.discarded)
	}
}

/* ===== pure helpers ===== */

func TestGenerateCurriculumCode(t *testing.T) {
	code := GenerateCurriculumCode(" MATH ")
	if !strings.HasPrefix(code, "MATH_") {
		t.Fatalf("unexpected code %q", code)
	}
	suffix := strings.TrimPrefix(code, "MATH_")
	if len(suffix) < 13 {
		t.Fatalf("expected millisecond suffix, got %q", suffix)
	}
}

func TestParseStructureRoundTrip(t *testing.T) {
	raw := `[
		{"title":"Numbers","sub_chapters":[
			{"title":"Integers","units":[{"title":"Addition"},{"title":"Subtraction"}]},
			{"title":"Fractions","units":[{"title":"Halves"}]}
		]},
		{"title":"Geometry","sub_chapters":[]}
	]`
	chapters, err := ParseStructure(raw)
	if err != nil {
		t.Fatalf("ParseStructure: %v", err)
	}

	encoded, err := json.Marshal(chapters)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again, err := ParseStructure(string(encoded))
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !reflect.DeepEqual(chapters, again) {
		t.Fatal("structure tree must round-trip losslessly")
	}
	if chapters[0].Title != "Numbers" || chapters[1].Title != "Geometry" {
		t.Fatal("chapter order must be preserved")
	}
	units := chapters[0].SubChapters[0].Units
	if units[0].Title != "Addition" || units[1].Title != "Subtraction" {
		t.Fatal("unit order must be preserved")
	}
}

func TestParseStructureErrors(t *testing.T) {
	cases := map[string]string{
		"not json":       "{",
		"empty array":    "[]",
		"untitled":       `[{"title":""}]`,
		"untitled unit":  `[{"title":"A","sub_chapters":[{"title":"B","units":[{"title":" "}]}]}]`,
		"wrong shape":    `{"title":"A"}`,
	}
	for name, raw := range cases {
		if _, err := ParseStructure(raw); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
