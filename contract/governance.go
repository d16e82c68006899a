package main

import (
	"strings"

	"offset_registry/contract/registry"
)

// -----------------------------------------------------------------------------
// Governance Engine
// -----------------------------------------------------------------------------
//
// Proposal lifecycle: Open -> Executed, terminal. Votes are aggregate
// counters only; there is deliberately no per-identity vote record, so the
// same identity can vote repeatedly (covered by tests as documented
// behavior). Execution requires votesFor to meet the configured absolute
// minimum and flips the executed flag; it applies no further effect, as a
// placeholder for future proposal-driven parameter changes.

// CreateProposal opens a new proposal with zero vote counters. Admin only.
// Payload: the proposal description, taken whole.
//
//go:wasmexport proposal_create
func CreateProposal(payload *string) *string {
	requireInitialized()
	caller := getSenderAddress()
	authorize(caller, roleAdmin, "")

	description := strings.TrimSpace(unwrapPayload(payload, "proposal description required"))
	if description == "" {
		revertInvalidArgument("proposal description must not be empty")
	}
	if len(description) > MaxDescriptionLength {
		revertInvalidArgument("proposal description too long")
	}

	id := nextID(ProposalsCount)
	prpsl := registry.Proposal{
		ID:          id,
		Proposer:    caller,
		Description: description,
		CreatedAt:   nowUnix(),
		Tx:          getTxID(),
	}
	saveProposal(&prpsl)

	emitProposalCreatedEvent(id, caller.String())
	return marshalResponse(prpsl)
}

// VoteOnProposal bumps votesFor or votesAgainst by one. Rejects unknown ids
// and proposals already executed. Payload: proposalId|support.
//
//go:wasmexport proposal_vote
func VoteOnProposal(payload *string) *string {
	requireInitialized()
	args := decodeVoteArgs(payload)
	caller := getSenderAddress()

	prpsl := mustLoadProposal(args.ProposalID)
	if prpsl.Executed {
		revertInvalidState("proposal already executed")
	}
	if args.Support {
		prpsl.VotesFor++
	} else {
		prpsl.VotesAgainst++
	}
	saveProposal(prpsl)

	emitVoteCastEvent(prpsl.ID, caller.String(), args.Support)
	return strptr("vote recorded")
}

// ExecuteProposal flips the executed flag once votesFor meets the configured
// minimum. Admin only. A second execute on the same proposal always fails
// with invalid_state. Payload: proposalId.
//
//go:wasmexport proposal_execute
func ExecuteProposal(payload *string) *string {
	requireInitialized()
	caller := getSenderAddress()
	authorize(caller, roleAdmin, "")

	id := parseUintField(unwrapPayload(payload, "proposal id required"), "proposal id")
	prpsl := mustLoadProposal(id)
	if prpsl.Executed {
		revertInvalidState("proposal already executed")
	}
	cfg := mustLoadGlobalConfig()
	if prpsl.VotesFor < cfg.MinVotesToExecute {
		revertInvalidState("proposal lacks required votes")
	}

	prpsl.Executed = true
	saveProposal(prpsl)

	emitProposalExecutedEvent(prpsl.ID, caller.String())
	return strptr("executed")
}

// GetProposal returns one proposal as JSON. Payload: proposalId.
//
//go:wasmexport proposal_get
func GetProposal(payload *string) *string {
	requireInitialized()
	id := parseUintField(unwrapPayload(payload, "proposal id required"), "proposal id")
	return marshalResponse(*mustLoadProposal(id))
}
