package main

import (
	"strconv"
	"time"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// cachedEnv/cachedAllow are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop memoized data
// so reads stay consistent within one call and never leak across calls.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedAllow     *TransferAllow
	allowResolved   bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few
// lines; helper calls (sender, timestamps, intents) always see one snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedAllow = nil
		allowResolved = false
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

func getTxID() string {
	return currentEnv().TxId
}

// TransferAllow represents the attached value of the current call: the
// transfer.allow intent caps how much the contract may draw from the sender.
type TransferAllow struct {
	Limit registry.Amount
	Token sdk.Asset
}

// getFirstTransferAllow scans the call intents and returns the first valid
// transfer.allow entry, nil when the caller attached no value.
func getFirstTransferAllow() *TransferAllow {
	if allowResolved {
		return cachedAllow
	}
	allowResolved = true
	for _, intent := range currentEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := sdk.Asset(intent.Args["token"])
		if !token.IsValid() {
			sdk.Abort("invalid intent asset")
		}
		limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
		if err != nil || limit < 0 {
			sdk.Abort("invalid intent limit")
		}
		cachedAllow = &TransferAllow{
			Limit: registry.Amount(limit),
			Token: token,
		}
		return cachedAllow
	}
	return nil
}

// attachedValue returns the value attached in the configured asset, zero when
// the caller attached nothing or attached the wrong asset.
func attachedValue(asset sdk.Asset) registry.Amount {
	ta := getFirstTransferAllow()
	if ta == nil || ta.Token != asset {
		return 0
	}
	return ta.Limit
}

// nowUnix resolves the ledger block time: integer seconds first, RFC3339 as
// fallback for older hosts.
func nowUnix() int64 {
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, err := strconv.ParseInt(*tsPtr, 10, 64); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, *tsPtr); err == nil {
			return t.Unix()
		}
	}
	return 0
}
