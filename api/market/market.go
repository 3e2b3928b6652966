// Package market provides typed bindings for the "market" section of
// the Torn API. Market requests take an item ID as their target, except
// for the points market which ignores it.
package market

import (
	"github.com/39C-wallenstein/torn-api/api"
	"github.com/shopspring/decimal"
)

// Category is the path segment for market requests.
const Category = "market"

// Selection names one block of market data the API can return.
type Selection string

const (
	SelectionBazaar       Selection = "bazaar"
	SelectionItemMarket   Selection = "itemmarket"
	SelectionPointsMarket Selection = "pointsmarket"
)

func (s Selection) String() string {
	return string(s)
}

// Response wraps a market payload with typed accessors, one per
// selection.
type Response struct {
	*api.Response
}

// Listing is one offer on the item market or in a bazaar. Cost decodes
// as a decimal because bazaar owners can price in fractions of a dollar.
type Listing struct {
	ID       int64           `json:"ID"`
	Cost     decimal.Decimal `json:"cost"`
	Quantity int64           `json:"quantity"`
}

// PointsListing is one offer on the points market.
type PointsListing struct {
	Cost      decimal.Decimal `json:"cost"`
	Quantity  int64           `json:"quantity"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Bazaar decodes the "bazaar" selection: cheapest bazaar offers for the
// requested item, cheapest first. The field is null when nobody sells
// the item; that comes back as a nil slice.
func (r Response) Bazaar() ([]Listing, error) {
	var listings []Listing
	if err := r.DecodeField("bazaar", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ItemMarket decodes the "itemmarket" selection: open market offers for
// the requested item, cheapest first.
func (r Response) ItemMarket() ([]Listing, error) {
	var listings []Listing
	if err := r.DecodeField("itemmarket", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// PointsMarket decodes the "pointsmarket" selection, keyed by listing
// ID.
func (r Response) PointsMarket() (map[int64]PointsListing, error) {
	var listings map[int64]PointsListing
	if err := r.DecodeField("pointsmarket", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
