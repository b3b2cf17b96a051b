package service

import (
	"reflect"
	"testing"
)

func TestSplitClassLabels(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "1,2,3", []string{"1", "2", "3"}},
		{"trims whitespace", " 1 , 2 ,3 ", []string{"1", "2", "3"}},
		{"drops empties", "1,,2,", []string{"1", "2"}},
		{"dedupes keeping first", "1,2,2,1,3", []string{"1", "2", "3"}},
		{"empty input", "", []string{}},
		{"only separators", " , ,", []string{}},
		{"word labels", "Grade A, Grade B, Grade A", []string{"Grade A", "Grade B"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitClassLabels(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitClassLabels(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMergeClassLabels(t *testing.T) {
	got := MergeClassLabels([]string{"1", "2"}, []string{"2", "3", "1", "4"})
	want := []string{"1", "2", "3", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MergeClassLabels = %v, want %v", got, want)
	}
}

func TestContainsClassLabel(t *testing.T) {
	if !ContainsClassLabel("1, 2, 3", "2") {
		t.Error("expected label 2 to be contained")
	}
	if ContainsClassLabel("1, 2, 3", "4") {
		t.Error("did not expect label 4 to be contained")
	}
	if ContainsClassLabel("10, 20", "1") {
		t.Error("substring of a label must not match")
	}
}
