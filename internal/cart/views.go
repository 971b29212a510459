package cart

import (
	"github.com/shopspring/decimal"

	"github.com/fashionhive/storefront/internal/pricing"
)

// OtherBrand is the partition key for items with no brand collection.
const OtherBrand = "Other"

// BrandGroup is one brand partition of the cart, checked out independently.
type BrandGroup struct {
	Brand      string     `json:"brand"`
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Total      float64    `json:"total"`
}

func partitionKey(item LineItem) string {
	if item.BrandCollection == "" {
		return OtherBrand
	}
	return item.BrandCollection
}

// GroupByBrand partitions the items by brand collection, keeping each item's
// relative order inside its group.
func (s State) GroupByBrand() map[string][]LineItem {
	grouped := make(map[string][]LineItem)
	for _, item := range s.items {
		key := partitionKey(item)
		grouped[key] = append(grouped[key], item)
	}
	return grouped
}

// BrandGroups returns the brand partitions ordered by the first appearance of
// each brand in the cart, with per-partition totals.
func (s State) BrandGroups() []BrandGroup {
	var groups []BrandGroup
	index := make(map[string]int)
	sums := make([]decimal.Decimal, 0)
	for _, item := range s.items {
		key := partitionKey(item)
		idx, ok := index[key]
		if !ok {
			idx = len(groups)
			index[key] = idx
			groups = append(groups, BrandGroup{Brand: key})
			sums = append(sums, decimal.Zero)
		}
		groups[idx].Items = append(groups[idx].Items, item)
		groups[idx].TotalItems += item.Quantity
		sums[idx] = sums[idx].Add(pricing.LineTotal(item.NumericPrice, item.Quantity))
	}
	for i := range groups {
		groups[i].Total = pricing.Float(sums[i])
	}
	return groups
}

// BrandTotal sums NumericPrice * Quantity over items whose brand collection
// equals brand exactly. Returns 0 when nothing matches.
func (s State) BrandTotal(brand string) float64 {
	sum := decimal.Zero
	for _, item := range s.items {
		if item.BrandCollection == brand {
			sum = sum.Add(pricing.LineTotal(item.NumericPrice, item.Quantity))
		}
	}
	return pricing.Float(sum)
}
