package models

// Product is a single row of the Product table.
// ID is assigned by the store on insert and is zero until then.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// GetID implements the quiet-mode ID interface used by the CLI formatter
func (p *Product) GetID() int {
	return p.ID
}
