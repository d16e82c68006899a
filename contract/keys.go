package main

import (
	"strconv"

	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Storage Keys
////////////////////////////////////////////////////////////////////////////////

// GlobalConfigKey stores the administrator-owned configuration aggregate.
const GlobalConfigKey = "cfg"

func projectKey(id uint64) string {
	return "prj:" + strconv.FormatUint(id, 10)
}

// balanceKey scopes a holder balance to one project. The project id comes
// first because holder addresses contain ':' themselves.
func balanceKey(projectID uint64, holder sdk.Address) string {
	return "bal:" + strconv.FormatUint(projectID, 10) + ":" + holder.String()
}

func rewardKey(holder sdk.Address) string {
	return "rwd:" + holder.String()
}

// rewardHoldersIndexKey lists every holder with accrued points, for the leaderboard.
const rewardHoldersIndexKey = "rwd:idx"

func transactionKey(seq uint64) string {
	return "tx:" + strconv.FormatUint(seq, 10)
}

// holderTxIndexKey lists the sequence numbers of one holder's transactions.
func holderTxIndexKey(holder sdk.Address) string {
	return "txidx:" + holder.String()
}

func proposalKey(id uint64) string {
	return "prop:" + strconv.FormatUint(id, 10)
}
