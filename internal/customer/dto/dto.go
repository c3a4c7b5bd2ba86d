package dto

type CustomerFilters struct {
	SearchQuery string // matches name, email or phone, case-insensitive
}
