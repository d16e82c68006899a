package main

import (
	"strconv"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Credit Balance State
////////////////////////////////////////////////////////////////////////////////

// getCreditBalance reads a holder's balance for one project, zero if unset.
// Balances are stored as bare decimal strings, one key per (project, holder).
func getCreditBalance(holder sdk.Address, projectID uint64) registry.Amount {
	ptr := sdk.StateGetObject(balanceKey(projectID, holder))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseInt(*ptr, 10, 64)
	return registry.Amount(n)
}

func setCreditBalance(holder sdk.Address, projectID uint64, amount registry.Amount) {
	sdk.StateSetObject(balanceKey(projectID, holder), strconv.FormatInt(int64(amount), 10))
}
