package helper

import (
	"strings"
	"sync"
	"testing"
)

// Concurrent creates each hold a distinct placeholder until the serial id
// lands, so the unique index on the code column never trips mid-transaction.
func TestPendingCodeUniqueUnderConcurrency(t *testing.T) {
	const workers, perWorker = 16, 64

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				codes = append(codes, PendingCode())
			}
			mu.Lock()
			for _, code := range codes {
				if seen[code] {
					t.Errorf("duplicate pending code %q", code)
				}
				seen[code] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d distinct codes, got %d", workers*perWorker, len(seen))
	}
	for code := range seen {
		if !strings.HasPrefix(code, "pending-") {
			t.Fatalf("pending code %q must carry the pending- prefix", code)
		}
		break
	}
}

// N creations land N distinct serial ids, so the derived codes are distinct.
func TestDerivedCodesDistinctPerSerialID(t *testing.T) {
	const n = 100

	schoolCodes := make(map[string]bool, n)
	teacherCodes := make(map[string]bool, n)
	for id := uint(1); id <= n; id++ {
		schoolCodes[SchoolCodeFor(id)] = true
		teacherCodes[TeacherCodeFor(id)] = true
	}
	if len(schoolCodes) != n || len(teacherCodes) != n {
		t.Fatalf("expected %d distinct codes, got %d school / %d teacher",
			n, len(schoolCodes), len(teacherCodes))
	}

	if got := SchoolCodeFor(7); got != "7-SCH" {
		t.Fatalf("SchoolCodeFor(7) = %q", got)
	}
	if got := TeacherCodeFor(7); got != "7-TCH" {
		t.Fatalf("TeacherCodeFor(7) = %q", got)
	}
}
