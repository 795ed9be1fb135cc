package models

type Expense struct {
	ID       int     `json:"id"`
	Date     string  `json:"date"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Payment  string  `json:"payment,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// ExpenseInput is the POST/PUT payload. Blank optional fields go out as empty
// strings, not nulls; some backend columns are NOT NULL.
type ExpenseInput struct {
	Date     string  `json:"date"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Payment  string  `json:"payment"`
	Note     string  `json:"note"`
}
