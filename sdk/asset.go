package sdk

type Asset string

const (
	AssetHive       Asset = "hive"
	AssetHbd        Asset = "hbd"
	AssetHbdSavings Asset = "hbd_savings"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetHive.String()
func (a Asset) String() string {
	return string(a)
}

// IsValid reports whether the ticker is one the ledger can settle.
func (a Asset) IsValid() bool {
	switch a {
	case AssetHive, AssetHbd, AssetHbdSavings:
		return true
	}
	return false
}
