package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// -----------------------------------------------------------------------------
// Global Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true once contract_init has run.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(GlobalConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

func saveGlobalConfig(cfg *registry.GlobalConfig) {
	b, err := tinyjson.Marshal(cfg)
	if err != nil {
		sdk.Abort("failed to marshal config: " + err.Error())
	}
	sdk.StateSetObject(GlobalConfigKey, string(b))
}

func loadGlobalConfig() *registry.GlobalConfig {
	ptr := sdk.StateGetObject(GlobalConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	var cfg registry.GlobalConfig
	if err := tinyjson.Unmarshal([]byte(*ptr), &cfg); err != nil {
		sdk.Abort("failed to unmarshal config: " + err.Error())
	}
	return &cfg
}

// mustLoadGlobalConfig is for paths already past requireInitialized.
func mustLoadGlobalConfig() *registry.GlobalConfig {
	cfg := loadGlobalConfig()
	if cfg == nil {
		sdk.Abort("contract not initialized")
	}
	return cfg
}
