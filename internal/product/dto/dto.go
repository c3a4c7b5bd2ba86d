package dto

type ProductFilters struct {
	Category    string
	SearchQuery string // matches name or sku, case-insensitive
}
