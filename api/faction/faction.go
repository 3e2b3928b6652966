// Package faction provides typed bindings for the "faction" section of
// the Torn API.
package faction

import (
	"github.com/39C-wallenstein/torn-api/api"
	"github.com/39C-wallenstein/torn-api/api/user"
	"github.com/shopspring/decimal"
)

// Category is the path segment for faction requests.
const Category = "faction"

// Selection names one block of faction data the API can return.
type Selection string

const (
	SelectionBasic       Selection = "basic"
	SelectionAttacks     Selection = "attacks"
	SelectionAttacksFull Selection = "attacksfull"
	SelectionChain       Selection = "chain"
	SelectionChains      Selection = "chains"
	SelectionTerritory   Selection = "territory"
)

func (s Selection) String() string {
	return string(s)
}

// Response wraps a faction payload with typed accessors, one per
// selection.
type Response struct {
	*api.Response
}

// Member is one faction member as listed under "basic".
type Member struct {
	Name          string          `json:"name"`
	Level         int             `json:"level"`
	DaysInFaction int             `json:"days_in_faction"`
	Position      string          `json:"position"`
	Status        user.Status     `json:"status"`
	LastAction    user.LastAction `json:"last_action"`
}

// Basic is the "basic" selection. Its fields sit at the response root;
// the member roster is keyed by player ID.
type Basic struct {
	ID        int64            `json:"ID"`
	Name      string           `json:"name"`
	Leader    int64            `json:"leader"`
	Respect   int64            `json:"respect"`
	Age       int              `json:"age"`
	Capacity  int              `json:"capacity"`
	BestChain int              `json:"best_chain"`
	Members   map[int64]Member `json:"members"`
}

// Chain is the "chain" selection: the live chain counter. All fields
// are zero when no chain is running.
type Chain struct {
	Current  int             `json:"current"`
	Max      int             `json:"max"`
	Timeout  int             `json:"timeout"`
	Modifier decimal.Decimal `json:"modifier"`
	Cooldown int             `json:"cooldown"`
	Start    api.Timestamp   `json:"start"`
	End      api.Timestamp   `json:"end"`
}

// ChainReport is one entry of the "chains" selection: a completed chain.
type ChainReport struct {
	Chain   int             `json:"chain"`
	Respect decimal.Decimal `json:"respect"`
	Start   api.Timestamp   `json:"start"`
	End     api.Timestamp   `json:"end"`
}

// TerritorySector is one territory block held by the faction, keyed in
// the response by its three letter code.
type TerritorySector struct {
	Sector       int   `json:"sector"`
	Size         int   `json:"size"`
	Density      int   `json:"density"`
	DailyRespect int   `json:"daily_respect"`
	Faction      int64 `json:"faction"`
}

// Basic decodes the "basic" selection.
func (r Response) Basic() (*Basic, error) {
	var basic Basic
	if err := r.Decode(&basic); err != nil {
		return nil, err
	}
	return &basic, nil
}

// Attacks decodes the "attacks" selection, keyed by attack ID. Entries
// share their shape with the user section attack log.
func (r Response) Attacks() (map[int64]user.Attack, error) {
	var attacks map[int64]user.Attack
	if err := r.DecodeField("attacks", &attacks); err != nil {
		return nil, err
	}
	return attacks, nil
}

// AttacksFull decodes the "attacksfull" selection. The API nests it
// under the same "attacks" key as the detailed log.
func (r Response) AttacksFull() (map[int64]user.AttackFull, error) {
	var attacks map[int64]user.AttackFull
	if err := r.DecodeField("attacks", &attacks); err != nil {
		return nil, err
	}
	return attacks, nil
}

// Chain decodes the "chain" selection.
func (r Response) Chain() (*Chain, error) {
	var chain Chain
	if err := r.DecodeField("chain", &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}

// Chains decodes the "chains" selection, keyed by chain ID.
func (r Response) Chains() (map[int64]ChainReport, error) {
	var chains map[int64]ChainReport
	if err := r.DecodeField("chains", &chains); err != nil {
		return nil, err
	}
	return chains, nil
}

// Territory decodes the "territory" selection, keyed by sector code.
func (r Response) Territory() (map[string]TerritorySector, error) {
	var territory map[string]TerritorySector
	if err := r.DecodeField("territory", &territory); err != nil {
		return nil, err
	}
	return territory, nil
}
