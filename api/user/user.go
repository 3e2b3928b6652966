// Package user provides typed bindings for the "user" section of the
// Torn API.
package user

import (
	"github.com/39C-wallenstein/torn-api/api"
	"github.com/shopspring/decimal"
)

// Category is the path segment for user requests.
const Category = "user"

// Selection names one block of user data the API can return.
type Selection string

const (
	SelectionBasic         Selection = "basic"
	SelectionProfile       Selection = "profile"
	SelectionDiscord       Selection = "discord"
	SelectionPersonalStats Selection = "personalstats"
	SelectionCrimes        Selection = "crimes"
	SelectionAttacks       Selection = "attacks"
	SelectionAttacksFull   Selection = "attacksfull"
)

func (s Selection) String() string {
	return string(s)
}

// Response wraps a user payload with typed accessors, one per selection.
type Response struct {
	*api.Response
}

// Status describes what state a player is currently in (okay, hospital,
// jail, traveling, ...).
type Status struct {
	Description string        `json:"description"`
	Details     string        `json:"details"`
	State       string        `json:"state"`
	Color       string        `json:"color"`
	Until       api.Timestamp `json:"until"`
}

// LastAction records when a player was last seen.
type LastAction struct {
	Status    string        `json:"status"`
	Timestamp api.Timestamp `json:"timestamp"`
	Relative  string        `json:"relative"`
}

// Basic is the "basic" selection. Its fields sit at the response root.
type Basic struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Gender   string `json:"gender"`
	Status   Status `json:"status"`
}

// LifeBar is a player's life gauge as reported under "profile".
type LifeBar struct {
	Current   int `json:"current"`
	Maximum   int `json:"maximum"`
	Increment int `json:"increment"`
	Interval  int `json:"interval"`
	TickTime  int `json:"ticktime"`
	FullTime  int `json:"fulltime"`
}

// Faction is the faction block of a profile. A factionless player comes
// back with a zero FactionID and position "None".
type Faction struct {
	Position      string `json:"position"`
	FactionID     int64  `json:"faction_id"`
	DaysInFaction int    `json:"days_in_faction"`
	FactionName   string `json:"faction_name"`
	FactionTag    string `json:"faction_tag"`
}

// Job is the employment block of a profile.
type Job struct {
	Position    string `json:"position"`
	CompanyID   int64  `json:"company_id"`
	CompanyName string `json:"company_name"`
	CompanyType int    `json:"company_type"`
}

// Marriage is the spouse block of a profile; zero-valued when single.
type Marriage struct {
	SpouseID   int64  `json:"spouse_id"`
	SpouseName string `json:"spouse_name"`
	Duration   int    `json:"duration"`
}

// States carries hospital and jail release times; zero when free.
type States struct {
	HospitalTimestamp api.Timestamp `json:"hospital_timestamp"`
	JailTimestamp     api.Timestamp `json:"jail_timestamp"`
}

// Profile is the "profile" selection. It extends Basic; like Basic its
// fields sit at the response root. Signup stays a string because the API
// serves it in local "2006-01-02 15:04:05" form rather than as an epoch.
type Profile struct {
	Basic

	Rank       string     `json:"rank"`
	Age        int        `json:"age"`
	Role       string     `json:"role"`
	Donator    int        `json:"donator"`
	Property   string     `json:"property"`
	PropertyID int64      `json:"property_id"`
	Signup     string     `json:"signup"`
	Awards     int        `json:"awards"`
	Friends    int        `json:"friends"`
	Enemies    int        `json:"enemies"`
	ForumPosts int        `json:"forum_posts"`
	Karma      int        `json:"karma"`
	Life       LifeBar    `json:"life"`
	LastAction LastAction `json:"last_action"`
	Faction    Faction    `json:"faction"`
	Job        Job        `json:"job"`
	Married    Marriage   `json:"married"`
	States     States     `json:"states"`
}

// Discord is the "discord" selection: the player's Discord link.
type Discord struct {
	UserID    int64  `json:"userID"`
	DiscordID string `json:"discordID"`
}

// PersonalStats is the "personalstats" selection, a flat counter map
// (stat name to lifetime value).
type PersonalStats map[string]int64

// CriminalRecord is the "crimes" selection.
type CriminalRecord struct {
	SellingIllegalProducts int `json:"selling_illegal_products"`
	Theft                  int `json:"theft"`
	AutoTheft              int `json:"auto_theft"`
	DrugDeals              int `json:"drug_deals"`
	ComputerCrimes         int `json:"computer_crimes"`
	Murder                 int `json:"murder"`
	FraudCrimes            int `json:"fraud_crimes"`
	Other                  int `json:"other"`
	Total                  int `json:"total"`
}

// AttackFull is one entry of the "attacksfull" selection: the condensed
// attack log without names or modifiers. Anonymous (stealthed) attackers
// leave AttackerID and AttackerFaction at zero.
type AttackFull struct {
	Code             string          `json:"code"`
	TimestampStarted api.Timestamp   `json:"timestamp_started"`
	TimestampEnded   api.Timestamp   `json:"timestamp_ended"`
	AttackerID       int64           `json:"attacker_id"`
	AttackerFaction  int64           `json:"attacker_faction"`
	DefenderID       int64           `json:"defender_id"`
	DefenderFaction  int64           `json:"defender_faction"`
	Result           string          `json:"result"`
	Stealthed        int             `json:"stealthed"`
	Respect          decimal.Decimal `json:"respect"`
}

// AttackModifiers are the respect multipliers applied to one attack.
type AttackModifiers struct {
	FairFight   decimal.Decimal `json:"fair_fight"`
	War         decimal.Decimal `json:"war"`
	Retaliation decimal.Decimal `json:"retaliation"`
	GroupAttack decimal.Decimal `json:"group_attack"`
	Overseas    decimal.Decimal `json:"overseas"`
	ChainBonus  decimal.Decimal `json:"chain_bonus"`
}

// Attack is one entry of the "attacks" selection: the detailed log with
// names, chain position and modifiers.
type Attack struct {
	AttackFull

	AttackerName        string          `json:"attacker_name"`
	AttackerFactionName string          `json:"attacker_factionname"`
	DefenderName        string          `json:"defender_name"`
	DefenderFactionName string          `json:"defender_factionname"`
	Chain               int             `json:"chain"`
	RespectGain         decimal.Decimal `json:"respect_gain"`
	RespectLoss         decimal.Decimal `json:"respect_loss"`
	Modifiers           AttackModifiers `json:"modifiers"`
}

// Basic decodes the "basic" selection.
func (r Response) Basic() (*Basic, error) {
	var basic Basic
	if err := r.Decode(&basic); err != nil {
		return nil, err
	}
	return &basic, nil
}

// Profile decodes the "profile" selection.
func (r Response) Profile() (*Profile, error) {
	var profile Profile
	if err := r.Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Discord decodes the "discord" selection.
func (r Response) Discord() (*Discord, error) {
	var discord Discord
	if err := r.DecodeField("discord", &discord); err != nil {
		return nil, err
	}
	return &discord, nil
}

// PersonalStats decodes the "personalstats" selection.
func (r Response) PersonalStats() (PersonalStats, error) {
	var stats PersonalStats
	if err := r.DecodeField("personalstats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Crimes decodes the "crimes" selection.
func (r Response) Crimes() (*CriminalRecord, error) {
	var record CriminalRecord
	if err := r.DecodeField("criminalrecord", &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Attacks decodes the "attacks" selection, keyed by attack ID.
func (r Response) Attacks() (map[int64]Attack, error) {
	var attacks map[int64]Attack
	if err := r.DecodeField("attacks", &attacks); err != nil {
		return nil, err
	}
	return attacks, nil
}

// AttacksFull decodes the "attacksfull" selection. The API nests it
// under the same "attacks" key as the detailed log.
func (r Response) AttacksFull() (map[int64]AttackFull, error) {
	var attacks map[int64]AttackFull
	if err := r.DecodeField("attacks", &attacks); err != nil {
		return nil, err
	}
	return attacks, nil
}
