package main

import "offset_registry/sdk"

// -----------------------------------------------------------------------------
// Transaction Log read surface
// -----------------------------------------------------------------------------

// GetAllTransactions returns the global ordered history. No pagination; the
// full sequence is the contract.
//
//go:wasmexport tx_list_all
func GetAllTransactions(payload *string) *string {
	requireInitialized()
	return marshalResponse(listAllTransactions())
}

// GetUserTransactions returns the ordered history restricted to one actor.
// Payload: holder address.
//
//go:wasmexport tx_list_user
func GetUserTransactions(payload *string) *string {
	requireInitialized()
	holder := sdk.Address(unwrapPayload(payload, "holder address required"))
	return marshalResponse(listHolderTransactions(holder))
}
