package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cakmak-pos/models"
)

func (c *Client) Expenses(ctx context.Context, from, to string) ([]models.Expense, error) {
	query := url.Values{"from": {from}, "to": {to}}
	var rows []models.Expense
	if err := c.get(ctx, "/Expenses", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateExpense posts a new expense and returns the id the backend assigned.
// The endpoint has answered with both a bare number and an {id} object.
func (c *Client) CreateExpense(ctx context.Context, input models.ExpenseInput) (int, error) {
	var raw json.RawMessage
	if err := c.send(ctx, http.MethodPost, "/Expenses", input, &raw); err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}
	var id int
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}
	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, fmt.Errorf("decode /Expenses response: %w", err)
	}
	return obj.ID, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id int, input models.ExpenseInput) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/Expenses/%d", id), input, nil)
}

func (c *Client) DeleteExpense(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/Expenses/%d", id), nil, nil)
}
