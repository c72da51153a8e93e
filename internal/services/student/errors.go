package student

import (
	"fmt"

	"github.com/thenoetrevino/ledger/internal/database"
)

// ErrStudentNotFound is returned when an update or delete matched no row.
// It wraps database.ErrNotFound.
var ErrStudentNotFound = fmt.Errorf("student %w", database.ErrNotFound)
