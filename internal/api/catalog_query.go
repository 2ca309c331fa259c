package api

// CatalogQuery holds the catalog filter parameters. Omitted filters
// impose no constraint; supplied ones are combined conjunctively.
// swagger:model api.CatalogQuery
type CatalogQuery struct {
	Category string   `query:"category"`
	MinPrice *float64 `query:"min_price"`
	MaxPrice *float64 `query:"max_price"`
	InStock  string   `query:"in_stock"`
	Page     int      `query:"page"`
}
