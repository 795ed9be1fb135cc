package services

import (
	"context"

	"cakmak-pos/store"
	"cakmak-pos/upstream"
)

// LoadCatalog pulls products and tables from the backend into the cache.
// Called at startup and whenever the operator asks for a refresh.
func LoadCatalog(ctx context.Context, backend *upstream.Client, catalog *store.Catalog) error {
	products, err := backend.Products(ctx)
	if err != nil {
		return err
	}
	tables, err := backend.Tables(ctx)
	if err != nil {
		return err
	}
	catalog.SetProducts(products)
	catalog.SetTables(tables)
	return nil
}
