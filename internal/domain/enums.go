package domain

// SortOrder represents a product listing order
type SortOrder string

const (
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
	SortNewest    SortOrder = "newest"
)

// DefaultSortOrder is used when a listing request names no order
const DefaultSortOrder = SortPriceDesc

// IsValid checks if the sort order is known
func (s SortOrder) IsValid() bool {
	switch s {
	case SortPriceAsc,
		SortPriceDesc,
		SortNameAsc,
		SortNameDesc,
		SortNewest:
		return true
	default:
		return false
	}
}

// Normalize maps an empty order to the default and unknown orders to newest
func (s SortOrder) Normalize() SortOrder {
	if s == "" {
		return DefaultSortOrder
	}
	if !s.IsValid() {
		return SortNewest
	}
	return s
}
