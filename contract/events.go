package main

import (
	"fmt"
	"strconv"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// Events are terse one-line pings for explorers and indexing bots. Field
// order and presence are part of the durable contract: consumers replay
// history from these lines, so never reorder or drop fields.

// emitInitEvent marks the one-time initialization with admin and permission mode.
func emitInitEvent(admin string, mode string) {
	sdk.Log(fmt.Sprintf(
		"init|by:%s|mode:%s",
		admin,
		mode,
	))
}

// emitProjectRegisteredEvent gives watchers a ping without scanning storage diffs.
func emitProjectRegisteredEvent(projectId uint64, owner string, total registry.Amount, price registry.Amount) {
	sdk.Log(fmt.Sprintf(
		"prc|id:%d|by:%s|tc:%d|p:%d",
		projectId,
		owner,
		total,
		price,
	))
}

// emitProjectUpdatedEvent mirrors the registration ping for supply rewrites.
func emitProjectUpdatedEvent(projectId uint64, owner string, total registry.Amount, price registry.Amount) {
	sdk.Log(fmt.Sprintf(
		"pru|id:%d|by:%s|tc:%d|p:%d",
		projectId,
		owner,
		total,
		price,
	))
}

// emitPurchaseEvent includes the fee split so accounting can be replayed from logs only.
func emitPurchaseEvent(projectId uint64, buyer string, amount, total, fee registry.Amount) {
	sdk.Log(fmt.Sprintf(
		"buy|id:%d|by:%s|am:%d|tp:%d|fee:%d",
		projectId,
		buyer,
		amount,
		total,
		fee,
	))
}

// emitRetireEvent records permanent credit destruction.
func emitRetireEvent(projectId uint64, holder string, amount registry.Amount) {
	sdk.Log(fmt.Sprintf(
		"ret|id:%d|by:%s|am:%d",
		projectId,
		holder,
		amount,
	))
}

// emitTransferEvent traces holder-to-holder moves plus the flat fee taken.
func emitTransferEvent(projectId uint64, from string, to string, amount, fee registry.Amount) {
	sdk.Log(fmt.Sprintf(
		"trf|id:%d|from:%s|to:%s|am:%d|fee:%d",
		projectId,
		from,
		to,
		amount,
		fee,
	))
}

// emitRewardEarnedEvent fires after every accrual with the fresh totals.
func emitRewardEarnedEvent(holder string, points uint64, badge string) {
	sdk.Log(fmt.Sprintf(
		"rwd|by:%s|pts:%d|bdg:%s",
		holder,
		points,
		badge,
	))
}

// emitBadgeThresholdEvent spells out tier changes so auditors can track them.
func emitBadgeThresholdEvent(badge string, threshold uint64) {
	sdk.Log(fmt.Sprintf(
		"bt|bdg:%s|th:%d",
		badge,
		threshold,
	))
}

// emitRegistrationToggledEvent signals the public-registration flag flip.
func emitRegistrationToggledEvent(enabled bool) {
	sdk.Log(fmt.Sprintf(
		"cfg|pubreg:%s",
		strconv.FormatBool(enabled),
	))
}

// emitMinVotesEvent signals the execution quorum change.
func emitMinVotesEvent(min uint64) {
	sdk.Log(fmt.Sprintf(
		"mv|min:%d",
		min,
	))
}

// emitFeeUpdatedEvent signals fee parameter changes.
func emitFeeUpdatedEvent(feeBps uint64, transferFee registry.Amount) {
	sdk.Log(fmt.Sprintf(
		"fee|bps:%d|tf:%d",
		feeBps,
		transferFee,
	))
}

// emitProposalCreatedEvent keeps observers updated for every new proposal.
func emitProposalCreatedEvent(proposalId uint64, proposer string) {
	sdk.Log(fmt.Sprintf(
		"gc|id:%d|by:%s",
		proposalId,
		proposer,
	))
}

// emitVoteCastEvent includes the direction so tallies can be replayed.
func emitVoteCastEvent(proposalId uint64, voter string, support bool) {
	sdk.Log(fmt.Sprintf(
		"gv|id:%d|by:%s|sup:%s",
		proposalId,
		voter,
		strconv.FormatBool(support),
	))
}

// emitProposalExecutedEvent marks the terminal state flip.
func emitProposalExecutedEvent(proposalId uint64, executor string) {
	sdk.Log(fmt.Sprintf(
		"gx|id:%d|by:%s",
		proposalId,
		executor,
	))
}
