// Package torn provides typed bindings for the "torn" section of the
// Torn API: city wide data that does not belong to a single player or
// faction.
package torn

import (
	"github.com/39C-wallenstein/torn-api/api"
	"github.com/shopspring/decimal"
)

// Category is the path segment for torn requests.
const Category = "torn"

// Selection names one block of city data the API can return.
type Selection string

const (
	SelectionItems         Selection = "items"
	SelectionStocks        Selection = "stocks"
	SelectionTerritory     Selection = "territory"
	SelectionTerritoryWars Selection = "territorywars"
	SelectionRackets       Selection = "rackets"
)

func (s Selection) String() string {
	return string(s)
}

// Response wraps a torn payload with typed accessors, one per selection.
type Response struct {
	*api.Response
}

// Item is one entry of the "items" selection. Prices are whole dollar
// amounts.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      string `json:"effect"`
	Requirement string `json:"requirement"`
	Type        string `json:"type"`
	WeaponType  string `json:"weapon_type"`
	BuyPrice    int64  `json:"buy_price"`
	SellPrice   int64  `json:"sell_price"`
	MarketValue int64  `json:"market_value"`
	Circulation int64  `json:"circulation"`
	Image       string `json:"image"`
}

// StockBenefit describes the payout a stock block grants.
type StockBenefit struct {
	Type        string `json:"type"`
	Frequency   int    `json:"frequency"`
	Requirement int64  `json:"requirement"`
	Description string `json:"description"`
}

// Stock is one entry of the "stocks" selection. The share price carries
// cents, so it decodes as a decimal.
type Stock struct {
	StockID      int64           `json:"stock_id"`
	Name         string          `json:"name"`
	Acronym      string          `json:"acronym"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketCap    int64           `json:"market_cap"`
	TotalShares  int64           `json:"total_shares"`
	Benefit      StockBenefit    `json:"benefit"`
}

// TerritorySector is one city territory block, keyed in the response by
// its three letter code. Faction is zero for unclaimed blocks.
type TerritorySector struct {
	Sector       int   `json:"sector"`
	Size         int   `json:"size"`
	Density      int   `json:"density"`
	DailyRespect int   `json:"daily_respect"`
	Faction      int64 `json:"faction"`
}

// TerritoryWar is one entry of the "territorywars" selection, keyed by
// the contested territory code.
type TerritoryWar struct {
	AssaultingFaction int64         `json:"assaulting_faction"`
	DefendingFaction  int64         `json:"defending_faction"`
	Started           api.Timestamp `json:"started"`
	Ends              api.Timestamp `json:"ends"`
}

// Racket is one entry of the "rackets" selection, keyed by the territory
// code it sits on.
type Racket struct {
	Name    string        `json:"name"`
	Level   int           `json:"level"`
	Reward  string        `json:"reward"`
	Created api.Timestamp `json:"created"`
	Changed api.Timestamp `json:"changed"`
	Faction int64         `json:"faction"`
}

// Items decodes the "items" selection, keyed by item ID.
func (r Response) Items() (map[int64]Item, error) {
	var items map[int64]Item
	if err := r.DecodeField("items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Stocks decodes the "stocks" selection, keyed by stock ID.
func (r Response) Stocks() (map[int64]Stock, error) {
	var stocks map[int64]Stock
	if err := r.DecodeField("stocks", &stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}

// Territory decodes the "territory" selection, keyed by sector code.
func (r Response) Territory() (map[string]TerritorySector, error) {
	var territory map[string]TerritorySector
	if err := r.DecodeField("territory", &territory); err != nil {
		return nil, err
	}
	return territory, nil
}

// TerritoryWars decodes the "territorywars" selection, keyed by the
// contested sector code.
func (r Response) TerritoryWars() (map[string]TerritoryWar, error) {
	var wars map[string]TerritoryWar
	if err := r.DecodeField("territorywars", &wars); err != nil {
		return nil, err
	}
	return wars, nil
}

// Rackets decodes the "rackets" selection, keyed by sector code.
func (r Response) Rackets() (map[string]Racket, error) {
	var rackets map[string]Racket
	if err := r.DecodeField("rackets", &rackets); err != nil {
		return nil, err
	}
	return rackets, nil
}
