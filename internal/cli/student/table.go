package student

import (
	"fmt"
	"io"

	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/models"
)

// writeTable prints students as fixed-width columns preceded by a blank line
func writeTable(w io.Writer, students []*models.Student) error {
	header := fmt.Sprintf("%-10s %-20s %-15s %-10s", "ID", "Name", "Department", "Marks")
	if _, err := fmt.Fprintf(w, "\n%s\n", styles.HeaderStyle.Render(header)); err != nil {
		return err
	}

	for _, s := range students {
		if _, err := fmt.Fprintf(w, "%-10d %-20s %-15s %-10.2f\n", s.ID, s.Name, s.Department, s.Marks); err != nil {
			return err
		}
	}
	return nil
}

// studentList is the list verb's payload; --quiet prints one ID per line
type studentList []*models.Student

func (l studentList) GetIDs() []int {
	ids := make([]int, 0, len(l))
	for _, s := range l {
		ids = append(ids, s.ID)
	}
	return ids
}
