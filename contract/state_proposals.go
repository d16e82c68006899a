package main

import (
	"fmt"

	tinyjson "github.com/CosmWasm/tinyjson"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Proposal State Persistence
////////////////////////////////////////////////////////////////////////////////

func saveProposal(prpsl *registry.Proposal) {
	b, err := tinyjson.Marshal(prpsl)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal proposal %d: %v", prpsl.ID, err))
	}
	sdk.StateSetObject(proposalKey(prpsl.ID), string(b))
}

func loadProposal(id uint64) (*registry.Proposal, error) {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("proposal %d not found", id)
	}
	var prpsl registry.Proposal
	if err := tinyjson.Unmarshal([]byte(*ptr), &prpsl); err != nil {
		return nil, fmt.Errorf("failed unmarshal proposal %d: %v", id, err)
	}
	return &prpsl, nil
}

// mustLoadProposal reverts with the not_found symbol when the id is unknown.
func mustLoadProposal(id uint64) *registry.Proposal {
	prpsl, err := loadProposal(id)
	if err != nil {
		revertNotFound(err.Error())
	}
	return prpsl
}
