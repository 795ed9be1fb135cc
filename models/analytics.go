package models

type DailyRow struct {
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Revenue   float64 `json:"revenue"`
	Expense   float64 `json:"expense"`
	Net       float64 `json:"net"`
	Orders    int     `json:"orders"`
	AvgTicket float64 `json:"avgTicket"`
}

type TopProduct struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Revenue   float64 `json:"revenue"`
}

type PaymentBreakdown struct {
	Cash   float64 `json:"cash"`
	Card   float64 `json:"card"`
	Credit float64 `json:"credit"`
}

// DashboardSummary mirrors GET /Dashboard/summary. Expense and Net are
// pointers because older backends omit them and zero is a meaningful value.
type DashboardSummary struct {
	From      string            `json:"from"`
	To        string            `json:"to"`
	Revenue   float64           `json:"revenue"`
	Expense   *float64          `json:"expense"`
	Net       *float64          `json:"net"`
	Breakdown *PaymentBreakdown `json:"breakdown,omitempty"`
}

// Summary is the reconciled revenue/expense/net view shown on the dashboard.
// Expense is always the locally recomputed sum of the range's expense rows.
type Summary struct {
	From      string            `json:"from"`
	To        string            `json:"to"`
	Revenue   float64           `json:"revenue"`
	Expense   float64           `json:"expense"`
	Net       float64           `json:"net"`
	Breakdown *PaymentBreakdown `json:"breakdown,omitempty"`
}
