// internals/helpers/codes.go
package helper

import (
	"fmt"

	"github.com/google/uuid"
)

// PendingCode is a unique throwaway value for code columns that carry a
// unique index but whose real value ("<serial id>-SCH", "<serial id>-TCH")
// only exists after the insert. It is always overwritten inside the same
// transaction.
func PendingCode() string {
	return "pending-" + uuid.NewString()
}

// SchoolCodeFor derives a school's public code from its serial row id. Serial
// ids are unique, so concurrent creates can never yield the same code.
func SchoolCodeFor(id uint) string {
	return fmt.Sprintf("%d-SCH", id)
}

// TeacherCodeFor derives a teacher's public code from its serial row id.
func TeacherCodeFor(id uint) string {
	return fmt.Sprintf("%d-TCH", id)
}
