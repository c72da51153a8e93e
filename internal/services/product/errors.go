package product

import (
	"fmt"

	"github.com/thenoetrevino/ledger/internal/database"
)

// ErrProductNotFound is returned when an update or delete matched no row.
// It wraps database.ErrNotFound.
var ErrProductNotFound = fmt.Errorf("product %w", database.ErrNotFound)
