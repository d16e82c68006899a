package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offset_registry/contract/registry"
)

func TestRegisterProject(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)

	prj := registerTestProject(t, host, 1000, 10)

	assert.Equal(t, uint64(1), prj.ID)
	assert.Equal(t, ownerAddr, prj.Owner)
	assert.Equal(t, "Mangrove Restoration", prj.Name)
	assert.Equal(t, registry.Amount(1000), prj.Total)
	assert.Equal(t, registry.Amount(1000), prj.Available)
	assert.Equal(t, registry.Amount(10), prj.Price)
	assert.NotEmpty(t, prj.Tx)
	assert.Equal(t, int64(1767225600), prj.CreatedAt)
}

func TestRegisterProjectSequentialIDs(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)

	first := registerTestProject(t, host, 100, 1)
	second := registerTestProject(t, host, 200, 2)

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
}

func TestRegisterProjectValidation(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)

	mustFail(t, host, ownerAddr, nil, "|100|5", RegisterProject, "invalid_argument")
	mustFail(t, host, ownerAddr, nil, "Forest|0|5", RegisterProject, "invalid_argument")
	mustFail(t, host, ownerAddr, nil, "Forest|-10|5", RegisterProject, "invalid_argument")
	mustFail(t, host, ownerAddr, nil, "Forest|100|0", RegisterProject, "invalid_argument")
	mustFail(t, host, ownerAddr, nil, strings.Repeat("x", MaxNameLength+1)+"|100|5", RegisterProject, "invalid_argument")
}

func TestRegisterProjectAdminOnlyMode(t *testing.T) {
	host := newTestHost(t)
	_, err := host.Call(adminAddr, nil, strptr("admin-only"), ContractInit)
	require.NoError(t, err)

	mustFail(t, host, ownerAddr, nil, "Forest|100|5", RegisterProject, "authorization")

	ret := mustCall(t, host, adminAddr, nil, "Forest|100|5", RegisterProject)
	var prj registry.Project
	decodeInto(t, ret, &prj)
	assert.Equal(t, adminAddr, prj.Owner)
}

func TestToggleRegistrationOpensTheGate(t *testing.T) {
	host := newTestHost(t)
	_, err := host.Call(adminAddr, nil, strptr("admin-only"), ContractInit)
	require.NoError(t, err)

	mustFail(t, host, ownerAddr, nil, "Forest|100|5", RegisterProject, "authorization")
	mustCall(t, host, adminAddr, nil, "true", ToggleNonOwnerRegistration)
	registerTestProject(t, host, 100, 5)

	mustCall(t, host, adminAddr, nil, "false", ToggleNonOwnerRegistration)
	mustFail(t, host, ownerAddr, nil, "Another|100|5", RegisterProject, "authorization")
}

func TestToggleRegistrationIsAdminOnly(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)

	mustFail(t, host, ownerAddr, nil, "false", ToggleNonOwnerRegistration, "authorization")
}

func TestUpdateProject(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)

	ret := mustCall(t, host, ownerAddr, nil,
		strconv.FormatUint(prj.ID, 10)+"|Mangrove Restoration II|2000|12", UpdateProject)
	var updated registry.Project
	decodeInto(t, ret, &updated)

	assert.Equal(t, prj.ID, updated.ID)
	assert.Equal(t, "Mangrove Restoration II", updated.Name)
	assert.Equal(t, registry.Amount(2000), updated.Total)
	assert.Equal(t, registry.Amount(2000), updated.Available)
	assert.Equal(t, registry.Amount(12), updated.Price)
}

// An update after sales resets the availability counter to the new total.
// The sold balances survive, so the conserved supply bookkeeping restarts
// from the updated figure. Documented behavior, asserted here so a change
// to it is a conscious one.
func TestUpdateProjectResetsAvailableAfterSales(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)

	host.Deposit(buyerAddr, 10_000, "hive")
	mustCall(t, host, buyerAddr, hiveAllow(1000), "1|100", PurchaseCredits)
	assert.Equal(t, int64(100), creditBalance(t, host, buyerAddr, prj.ID))

	ret := mustCall(t, host, ownerAddr, nil, "1|Mangrove Restoration|1000|10", UpdateProject)
	var updated registry.Project
	decodeInto(t, ret, &updated)

	assert.Equal(t, registry.Amount(1000), updated.Available)
	assert.Equal(t, int64(100), creditBalance(t, host, buyerAddr, prj.ID))
}

func TestUpdateProjectOwnerOnly(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)

	mustFail(t, host, otherAddr, nil, "1|Takeover|1|1", UpdateProject, "authorization")
	// The administrator does not own the project either.
	mustFail(t, host, adminAddr, nil, "1|Takeover|1|1", UpdateProject, "authorization")
}

func TestGetProjectUnknownID(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)

	mustFail(t, host, ownerAddr, nil, "42", GetProject, "not_found")
}

func TestListProjects(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)

	ret := mustCall(t, host, ownerAddr, nil, "", ListProjects)
	var empty registry.ProjectList
	decodeInto(t, ret, &empty)
	assert.Len(t, empty, 0)

	registerTestProject(t, host, 100, 1)
	registerTestProject(t, host, 200, 2)

	ret = mustCall(t, host, ownerAddr, nil, "", ListProjects)
	var list registry.ProjectList
	decodeInto(t, ret, &list)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, uint64(2), list[1].ID)
}
