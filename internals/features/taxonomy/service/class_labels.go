// internals/features/taxonomy/service/class_labels.go
package service

import "strings"

// SplitClassLabels turns a stored comma-separated class string into an ordered
// list of labels: split on comma, trim whitespace, drop empties, deduplicate
// keeping the first occurrence. "1, 2, 2,  3," → ["1" "2" "3"].
func SplitClassLabels(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		label := strings.TrimSpace(p)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

// MergeClassLabels unions b into a, preserving a's order and appending the
// labels of b that a does not already carry.
func MergeClassLabels(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, label := range a {
		if _, dup := seen[label]; !dup {
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	for _, label := range b {
		if _, dup := seen[label]; !dup {
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}

// ContainsClassLabel reports whether label appears in the stored class string.
func ContainsClassLabel(stored, label string) bool {
	for _, l := range SplitClassLabels(stored) {
		if l == label {
			return true
		}
	}
	return false
}
