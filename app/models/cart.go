package models

import "github.com/shopspring/decimal"

// CartEntry is one line of the session cart. It denormalizes name, slug and
// image so the cart page can render without re-querying, and keeps the price
// snapshot taken at add time.
type CartEntry struct {
	Name     string
	Slug     string
	Price    decimal.Decimal
	Quantity int
	Image    string
}

// Cart maps the string form of a numeric product ID to its entry. It lives
// in the visitor session and is never persisted to the database.
type Cart map[string]CartEntry

// Count returns the total quantity across all entries.
func (c Cart) Count() int {
	total := 0
	for _, entry := range c {
		if entry.Quantity > 0 {
			total += entry.Quantity
		}
	}
	return total
}
