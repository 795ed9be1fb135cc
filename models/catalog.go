package models

// Category groups products for the tab filter on the register screen.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Price struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId,omitempty"`
	Value     float64 `json:"value"`
	StartsAt  string  `json:"startsAt,omitempty"`
}

// Product as the backend serves it. The client never mutates products.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit,omitempty"`
	IsComposite bool      `json:"isComposite,omitempty"`
	CategoryID  int       `json:"categoryId,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Prices      []Price   `json:"prices,omitempty"`
}

// CurrentPrice is the price the register charges: the first listed entry.
func (p Product) CurrentPrice() float64 {
	if len(p.Prices) == 0 {
		return 0
	}
	return p.Prices[0].Value
}

func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

type Table struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
