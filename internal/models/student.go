package models

// Student is a single row of the Students table.
// ID is assigned by the store on insert and is zero until then.
type Student struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Marks      float64 `json:"marks"`
}

// GetID implements the quiet-mode ID interface used by the CLI formatter
func (s *Student) GetID() int {
	return s.ID
}
