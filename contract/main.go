////////////////////////////////////////////////////////////////////////////////
// Offset Registry: carbon offset credit accounting and governance
// for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"strings"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as administrator and
// seeds the global configuration defaults. Must be called before any other
// function. Payload: "public" or "admin-only" (project registration
// permission), optionally "|asset" to settle in something other than hive.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	raw := unwrapPayload(payload, "permission mode required (public or admin-only)")
	parts := strings.Split(raw, "|")
	mode := strings.TrimSpace(parts[0])
	if mode != "public" && mode != "admin-only" {
		sdk.Abort("permission mode must be public or admin-only")
	}

	asset := sdk.AssetHive
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		asset = sdk.Asset(strings.TrimSpace(parts[1]))
		if !asset.IsValid() {
			sdk.Abort("unsupported settlement asset")
		}
	}

	cfg := registry.GlobalConfig{
		Admin:              getSenderAddress(),
		Asset:              asset,
		FeeBps:             DefaultFeeBps,
		TransferFee:        DefaultTransferFee,
		PublicRegistration: mode == "public",
		MinVotesToExecute:  DefaultMinVotesToExecute,
		ContributorMin:     DefaultContributorMin,
		ChampionMin:        DefaultChampionMin,
	}
	saveGlobalConfig(&cfg)

	emitInitEvent(cfg.Admin.String(), mode)

	if cfg.PublicRegistration {
		return strptr("initialized with public project registration")
	}
	return strptr("initialized with admin-only project registration")
}
