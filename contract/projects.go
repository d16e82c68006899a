package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// -----------------------------------------------------------------------------
// Project Registry
// -----------------------------------------------------------------------------

// RegisterProject creates a new offset project with the full supply
// available. Payload: name|totalCredits|pricePerCredit. Non-administrators
// may register only while public registration is enabled.
//
//go:wasmexport project_register
func RegisterProject(payload *string) *string {
	requireInitialized()
	args := decodeRegisterProjectArgs(payload)
	caller := getSenderAddress()

	cfg := mustLoadGlobalConfig()
	if !cfg.PublicRegistration && caller != cfg.Admin {
		revertAuthorization("project registration is admin-only")
	}
	validateProjectFields(args.Name, args.Total, args.Price)

	id := nextID(ProjectsCount)
	prj := registry.Project{
		ID:        id,
		Owner:     caller,
		Name:      args.Name,
		Total:     args.Total,
		Available: args.Total,
		Price:     args.Price,
		CreatedAt: nowUnix(),
		Tx:        getTxID(),
	}
	saveProject(&prj)

	emitProjectRegisteredEvent(id, caller.String(), prj.Total, prj.Price)
	return marshalResponse(prj)
}

// UpdateProject replaces a project's name, supply and price. Only the owning
// identity may call it. Available is reset to the new total, discarding any
// previously sold amount from the availability counter; sold balances are
// untouched. Covered by tests so a change here is a conscious one.
// Payload: projectId|name|totalCredits|pricePerCredit.
//
//go:wasmexport project_update
func UpdateProject(payload *string) *string {
	requireInitialized()
	args := decodeUpdateProjectArgs(payload)
	caller := getSenderAddress()

	prj := mustLoadProject(args.ProjectID)
	authorize(caller, roleResourceOwner, prj.Owner)
	validateProjectFields(args.Name, args.Total, args.Price)

	prj.Name = args.Name
	prj.Total = args.Total
	prj.Available = args.Total
	prj.Price = args.Price
	saveProject(prj)

	emitProjectUpdatedEvent(prj.ID, caller.String(), prj.Total, prj.Price)
	return marshalResponse(*prj)
}

// GetProject returns the project as JSON. Payload: projectId.
//
//go:wasmexport project_get
func GetProject(payload *string) *string {
	requireInitialized()
	id := parseUintField(unwrapPayload(payload, "project id required"), "project id")
	prj := mustLoadProject(id)
	return marshalResponse(*prj)
}

// ListProjects returns every registered project, oldest first.
//
//go:wasmexport project_list
func ListProjects(payload *string) *string {
	requireInitialized()
	return marshalResponse(listAllProjects())
}

// validateProjectFields enforces the shared registration/update constraints.
func validateProjectFields(name string, total, price registry.Amount) {
	if name == "" {
		revertInvalidArgument("project name must not be empty")
	}
	if len(name) > MaxNameLength {
		revertInvalidArgument("project name too long")
	}
	if total <= 0 {
		revertInvalidArgument("total credits must be positive")
	}
	if price <= 0 {
		revertInvalidArgument("price per credit must be positive")
	}
}

// marshalResponse serializes any registry type for the call return value.
func marshalResponse(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to marshal response: " + err.Error())
	}
	s := string(b)
	return &s
}
