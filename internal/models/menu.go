package models

// MenuItem represents a sellable item in the catalog.
// The catalog is static process-wide data; items never change after load.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}
