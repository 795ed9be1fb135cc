package upstream

import (
	"context"
	"net/url"
	"strconv"

	"cakmak-pos/models"
)

// Daily fetches the per-day aggregate rows. Note the parameter names: this
// endpoint takes fromDate/toDate, unlike the from/to used elsewhere.
func (c *Client) Daily(ctx context.Context, from, to string) ([]models.DailyRow, error) {
	query := url.Values{"fromDate": {from}, "toDate": {to}}
	var rows []models.DailyRow
	if err := c.get(ctx, "/Analytics/daily", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) TopProductsByDate(ctx context.Context, date string, limit int) ([]models.TopProduct, error) {
	query := url.Values{"date": {date}, "limit": {strconv.Itoa(limit)}}
	var rows []models.TopProduct
	if err := c.get(ctx, "/Analytics/top-products-by-date", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) DashboardSummary(ctx context.Context, from, to string) (*models.DashboardSummary, error) {
	query := url.Values{"from": {from}, "to": {to}}
	var summary models.DashboardSummary
	if err := c.get(ctx, "/Dashboard/summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
