package main

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// DefaultFeeBps skims 1% of every purchase for the administrator.
	DefaultFeeBps = 100
	// DefaultTransferFee is the flat fee (base units) drawn on credit transfers.
	DefaultTransferFee = 10
	// DefaultMinVotesToExecute gates proposal execution on absolute yes votes.
	DefaultMinVotesToExecute = 1
	// DefaultContributorMin / DefaultChampionMin are the badge tier thresholds.
	DefaultContributorMin = 100
	DefaultChampionMin    = 1000
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxNameLength limits project display names.
	MaxNameLength = 200
	// MaxDescriptionLength limits proposal descriptions.
	MaxDescriptionLength = 1000
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds an integer counter for projects (used for generating IDs).
	ProjectsCount = "count:prj"
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:prop"
	// TransactionsCount holds an integer counter for history records.
	TransactionsCount = "count:tx"
)
