package registry

import "offset_registry/sdk"

// Amount is an integer count of credits or ledger base units. No fractional
// scaling: one credit is one unit, one price tick is one base unit.
type Amount int64

// ActionKind tags history records with the operation that produced them.
type ActionKind string

const (
	ActionPurchase ActionKind = "purchase"
	ActionRetire   ActionKind = "retire"
	ActionTransfer ActionKind = "transfer"
)

// Badge labels, ordered Novice < Contributor < Champion.
const (
	BadgeNovice      = "Novice"
	BadgeContributor = "Contributor"
	BadgeChampion    = "Champion"
)

// GlobalConfig is the administrator-owned configuration aggregate. It is
// persisted as a single state blob and only mutated through admin-gated
// entry points.
type GlobalConfig struct {
	Admin              sdk.Address `json:"admin"`
	Asset              sdk.Asset   `json:"asset"`
	FeeBps             uint64      `json:"fee_bps"`
	TransferFee        Amount      `json:"transfer_fee"`
	PublicRegistration bool        `json:"public_registration"`
	MinVotesToExecute  uint64      `json:"min_votes"`
	ContributorMin     uint64      `json:"contributor_min"`
	ChampionMin        uint64      `json:"champion_min"`
}

// BadgeTier pairs a point threshold with its label.
type BadgeTier struct {
	Threshold uint64
	Label     string
}

// BadgeTiers returns the configured tier table ordered highest threshold
// first, the order BadgeFor scans in. Adding a tier means extending this
// table, not touching call sites.
func (c *GlobalConfig) BadgeTiers() []BadgeTier {
	return []BadgeTier{
		{Threshold: c.ChampionMin, Label: BadgeChampion},
		{Threshold: c.ContributorMin, Label: BadgeContributor},
	}
}

// Project is an offset project and its supply accounting. Invariant:
// Available <= Total, and Available plus all holder balances equals Total
// minus whatever has been retired.
type Project struct {
	ID        uint64      `json:"id"`
	Owner     sdk.Address `json:"owner"`
	Name      string      `json:"name"`
	Total     Amount      `json:"total"`
	Available Amount      `json:"available"`
	Price     Amount      `json:"price"`
	CreatedAt int64       `json:"created_at"`
	Tx        string      `json:"tx"`
}

// Reward is per-holder accrual state; Points only ever grows.
type Reward struct {
	Holder sdk.Address `json:"holder"`
	Points uint64      `json:"points"`
	Badge  string      `json:"badge"`
}

// Transaction is one immutable history record, indexed globally and per actor.
type Transaction struct {
	Seq       uint64      `json:"seq"`
	Actor     sdk.Address `json:"actor"`
	ProjectID uint64      `json:"project_id"`
	Amount    Amount      `json:"amount"`
	Action    ActionKind  `json:"action"`
	Timestamp int64       `json:"timestamp"`
}

// Proposal is a governance entry. Executed flips once and stays set; vote
// totals are aggregates only, there is no per-voter record.
type Proposal struct {
	ID           uint64      `json:"id"`
	Proposer     sdk.Address `json:"proposer"`
	Description  string      `json:"description"`
	VotesFor     uint64      `json:"votes_for"`
	VotesAgainst uint64      `json:"votes_against"`
	Executed     bool        `json:"executed"`
	CreatedAt    int64       `json:"created_at"`
	Tx           string      `json:"tx"`
}

type ProjectList []Project

type RewardList []Reward

type TransactionList []Transaction
