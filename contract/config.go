package main

import "offset_registry/contract/registry"

// -----------------------------------------------------------------------------
// Administrator configuration operations
// -----------------------------------------------------------------------------

// ToggleNonOwnerRegistration sets whether non-administrators may register
// projects. Payload: the new flag value.
//
//go:wasmexport config_toggle_public_registration
func ToggleNonOwnerRegistration(payload *string) *string {
	requireInitialized()
	authorize(getSenderAddress(), roleAdmin, "")

	enabled := parseBoolField(unwrapPayload(payload, "flag required"))
	cfg := mustLoadGlobalConfig()
	cfg.PublicRegistration = enabled
	saveGlobalConfig(cfg)

	emitRegistrationToggledEvent(enabled)
	return strptr("registration flag updated")
}

// SetMinVotesForProposal sets the absolute votesFor a proposal needs before
// execution. Payload: the new minimum.
//
//go:wasmexport config_set_min_votes
func SetMinVotesForProposal(payload *string) *string {
	requireInitialized()
	authorize(getSenderAddress(), roleAdmin, "")

	min := parseUintField(unwrapPayload(payload, "minimum votes required"), "minimum votes")
	if min == 0 {
		revertInvalidArgument("minimum votes must be positive")
	}
	cfg := mustLoadGlobalConfig()
	cfg.MinVotesToExecute = min
	saveGlobalConfig(cfg)

	emitMinVotesEvent(min)
	return strptr("minimum votes updated")
}

// SetFees updates the purchase fee percentage and the flat transfer fee.
// Payload: feeBps|transferFee.
//
//go:wasmexport config_set_fee
func SetFees(payload *string) *string {
	requireInitialized()
	authorize(getSenderAddress(), roleAdmin, "")

	feeBps, transferFee := decodeFeeArgs(payload)
	if feeBps > registry.BpsDenominator {
		revertInvalidArgument("fee bps exceed 100%")
	}
	cfg := mustLoadGlobalConfig()
	cfg.FeeBps = feeBps
	cfg.TransferFee = transferFee
	saveGlobalConfig(cfg)

	emitFeeUpdatedEvent(feeBps, transferFee)
	return strptr("fees updated")
}

// GetConfig returns the global configuration aggregate as JSON.
//
//go:wasmexport config_get
func GetConfig(payload *string) *string {
	requireInitialized()
	return marshalResponse(*mustLoadGlobalConfig())
}
