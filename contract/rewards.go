package main

import (
	"strconv"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// -----------------------------------------------------------------------------
// Reward Engine
// -----------------------------------------------------------------------------

// accrueReward adds one point per credit moved and recomputes the badge from
// the tier table. Points never decrease; the badge is a pure function of the
// new total against the current thresholds.
func accrueReward(holder sdk.Address, credits registry.Amount, cfg *registry.GlobalConfig) {
	rwd := loadReward(holder)
	rwd.Points += uint64(credits)
	rwd.Badge = registry.BadgeFor(rwd.Points, cfg.BadgeTiers())
	saveReward(rwd)
	addRewardHolderToIndex(holder)
	emitRewardEarnedEvent(holder.String(), rwd.Points, rwd.Badge)
}

// GetUserReputation returns a holder's reward record as JSON. Holders that
// never acted come back with zero points and the Novice badge.
// Payload: holder address.
//
//go:wasmexport reward_get
func GetUserReputation(payload *string) *string {
	requireInitialized()
	holder := sdk.Address(unwrapPayload(payload, "holder address required"))
	return marshalResponse(*loadReward(holder))
}

// GetLeaderboard returns every reward holder ordered by points, highest
// first. Plain bubble sort; leaderboards are an incidental read surface and
// holder counts stay small.
//
//go:wasmexport leaderboard_get
func GetLeaderboard(payload *string) *string {
	requireInitialized()
	holders := listRewardHolders()
	board := make(registry.RewardList, 0, len(holders))
	for _, h := range holders {
		board = append(board, *loadReward(h))
	}
	for i := 0; i < len(board); i++ {
		for j := 0; j < len(board)-i-1; j++ {
			if board[j].Points < board[j+1].Points {
				board[j], board[j+1] = board[j+1], board[j]
			}
		}
	}
	return marshalResponse(board)
}

// UpdateBadgeThreshold sets the point threshold for a named tier. Unknown
// tier names are a hard rejection, not a silent no-op. Admin only.
// Payload: badge|threshold.
//
//go:wasmexport config_set_badge_threshold
func UpdateBadgeThreshold(payload *string) *string {
	requireInitialized()
	badge, threshold := decodeThresholdArgs(payload)
	authorize(getSenderAddress(), roleAdmin, "")

	if !registry.KnownBadge(badge) {
		revertInvalidArgument("unknown badge tier: " + badge)
	}
	cfg := mustLoadGlobalConfig()
	switch badge {
	case registry.BadgeContributor:
		cfg.ContributorMin = threshold
	case registry.BadgeChampion:
		cfg.ChampionMin = threshold
	}
	saveGlobalConfig(cfg)

	emitBadgeThresholdEvent(badge, threshold)
	return strptr("threshold updated")
}

func formatAmount(a registry.Amount) string {
	return strconv.FormatInt(int64(a), 10)
}
