package upstream

import (
	"context"

	"cakmak-pos/models"
)

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/Products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Tables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := c.get(ctx, "/Tables", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}
