package main

import "offset_registry/sdk"

// role is what an entry point demands before touching state.
type role uint8

const (
	// roleAdmin restricts the call to the configured administrator.
	roleAdmin role = iota
	// roleResourceOwner restricts the call to the identity owning the resource.
	roleResourceOwner
)

// authorize is the single role check every gated entry point goes through,
// instead of scattering address equality comparisons. resourceOwner is only
// consulted for roleResourceOwner.
func authorize(caller sdk.Address, required role, resourceOwner sdk.Address) {
	switch required {
	case roleAdmin:
		cfg := mustLoadGlobalConfig()
		if caller != cfg.Admin {
			revertAuthorization("caller is not the administrator")
		}
	case roleResourceOwner:
		if caller != resourceOwner {
			revertAuthorization("caller does not own this resource")
		}
	}
}
