package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestDedupeCodes(t *testing.T) {
	got := dedupeCodes([]string{"A", "", "B", "A", "C", "B"})
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("dedupeCodes = %v, want %v", got, want)
	}
}

func TestAssignRejectsEmptyInput(t *testing.T) {
	svc := NewAssignmentService(nil)

	var re *RejectionError
	if err := svc.Assign(context.Background(), "", "1-SCH", []string{"C1"}); !errors.As(err, &re) {
		t.Fatalf("expected rejection for missing teacher, got %v", err)
	}
	if err := svc.Assign(context.Background(), "1-TCH", "", []string{"C1"}); !errors.As(err, &re) {
		t.Fatalf("expected rejection for missing school, got %v", err)
	}
	if err := svc.Assign(context.Background(), "1-TCH", "1-SCH", nil); !errors.As(err, &re) {
		t.Fatalf("expected rejection for empty course set, got %v", err)
	}
	if err := svc.Assign(context.Background(), "1-TCH", "1-SCH", []string{"", ""}); !errors.As(err, &re) {
		t.Fatalf("expected rejection for blank-only course set, got %v", err)
	}
	if re.Field != "courses" {
		t.Fatalf("last rejection should name courses, got %s", re.Field)
	}
}
