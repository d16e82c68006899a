package sdk

// Host is the ledger execution environment behind every contract call: kv
// state, call env, balance queries and atomic value transfers. The wasm build
// binds it to the chain host functions; native builds (tests, tooling) plug in
// the in-memory mock via UseHost.
type Host interface {
	Log(msg string)
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	StateDeleteObject(key string)
	GetEnv() Env
	GetEnvKey(key string) *string
	GetBalance(address Address, asset Asset) int64
	HiveDraw(amount int64, asset Asset)
	HiveTransfer(to Address, amount int64, asset Asset)
	Abort(msg string)
	Revert(msg, symbol string)
}

var activeHost Host

// UseHost swaps the backing host. Tests install a MockHost here; the tinygo
// build registers the chain bindings during init.
func UseHost(h Host) {
	activeHost = h
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello registry")
func Log(s string) {
	activeHost.Log(s)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	activeHost.StateSetObject(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return activeHost.StateGetObject(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	activeHost.StateDeleteObject(key)
}

// GetEnv pulls the call environment (sender, tx, block data, intents).
func GetEnv() Env {
	return activeHost.GetEnv()
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return activeHost.GetEnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
func GetBalance(address Address, asset Asset) int64 {
	return activeHost.GetBalance(address, asset)
}

// HiveDraw pulls tokens from the caller to the contract within the
// transfer.allow limit. The host fails the whole call if the limit or the
// caller balance does not cover the draw.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	activeHost.HiveDraw(amount, asset)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHive)
func HiveTransfer(to Address, amount int64, asset Asset) {
	activeHost.HiveTransfer(to, amount, asset)
}

// Abort stops execution immediately and surfaces the message to the chain.
// Reserved for malformed payloads; use Revert for domain failures.
func Abort(msg string) {
	activeHost.Abort(msg)
}

// Revert throws a named error back to the caller with a short symbol so
// callers and tests can match on the failure class.
// Example payload: sdk.Revert("unknown project", "not_found")
func Revert(msg string, symbol string) {
	activeHost.Revert(msg, symbol)
}
