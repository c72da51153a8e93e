package product

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/models"
)

var separator = strings.Repeat("-", 58)

// writeTable prints products as fixed-width columns under a dashed rule
func writeTable(w io.Writer, products []*models.Product) error {
	header := fmt.Sprintf("%-10s %-20s %-10s %-10s", "ProductID", "ProductName", "Price", "Quantity")
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", styles.HeaderStyle.Render(header), styles.SubtleStyle.Render(separator)); err != nil {
		return err
	}

	for _, p := range products {
		if _, err := fmt.Fprintf(w, "%-10d %-20s %-10.2f %-10d\n", p.ID, p.Name, p.Price, p.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// productList is the list verb's payload; --quiet prints one ID per line
type productList []*models.Product

func (l productList) GetIDs() []int {
	ids := make([]int, 0, len(l))
	for _, p := range l {
		ids = append(ids, p.ID)
	}
	return ids
}
