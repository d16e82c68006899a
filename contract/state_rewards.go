package main

import (
	"fmt"
	"strings"

	tinyjson "github.com/CosmWasm/tinyjson"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Reward State Persistence
////////////////////////////////////////////////////////////////////////////////

func saveReward(rwd *registry.Reward) {
	b, err := tinyjson.Marshal(rwd)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal reward for %s: %v", rwd.Holder, err))
	}
	sdk.StateSetObject(rewardKey(rwd.Holder), string(b))
}

// loadReward returns a zero-point Novice record for unseen holders so read
// paths never need a nil branch.
func loadReward(holder sdk.Address) *registry.Reward {
	ptr := sdk.StateGetObject(rewardKey(holder))
	if ptr == nil || *ptr == "" {
		return &registry.Reward{Holder: holder, Points: 0, Badge: registry.BadgeNovice}
	}
	var rwd registry.Reward
	if err := tinyjson.Unmarshal([]byte(*ptr), &rwd); err != nil {
		sdk.Abort(fmt.Sprintf("failed unmarshal reward for %s: %v", holder, err))
	}
	return &rwd
}

// addRewardHolderToIndex records a holder in the comma-joined leaderboard
// index, skipping duplicates.
func addRewardHolderToIndex(holder sdk.Address) {
	ptr := sdk.StateGetObject(rewardHoldersIndexKey)
	if ptr == nil || *ptr == "" {
		sdk.StateSetObject(rewardHoldersIndexKey, holder.String())
		return
	}
	for _, h := range strings.Split(*ptr, ",") {
		if h == holder.String() {
			return
		}
	}
	sdk.StateSetObject(rewardHoldersIndexKey, *ptr+","+holder.String())
}

func listRewardHolders() []sdk.Address {
	ptr := sdk.StateGetObject(rewardHoldersIndexKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	parts := strings.Split(*ptr, ",")
	out := make([]sdk.Address, 0, len(parts))
	for _, p := range parts {
		out = append(out, sdk.Address(p))
	}
	return out
}
