package main

import (
	"strconv"
	"testing"

	tinyjson "github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/require"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

var (
	adminAddr = sdk.Address("hive:registryadmin")
	ownerAddr = sdk.Address("hive:greenfields")
	buyerAddr = sdk.Address("hive:alice")
	otherAddr = sdk.Address("hive:bob")
)

// newTestHost wires a fresh in-memory host into the sdk for one test.
func newTestHost(t *testing.T) *sdk.MockHost {
	t.Helper()
	host := sdk.NewMockHost()
	sdk.UseHost(host)
	return host
}

// initPublic initializes the contract with public project registration,
// adminAddr as administrator and the default fees and thresholds.
func initPublic(t *testing.T, host *sdk.MockHost) {
	t.Helper()
	_, err := host.Call(adminAddr, nil, strptr("public"), ContractInit)
	require.NoError(t, err)
}

// hiveAllow builds the transfer.allow intent a caller attaches to fund a call.
func hiveAllow(limit int64) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"token": "hive",
			"limit": strconv.FormatInt(limit, 10),
		},
	}}
}

// mustCall runs an entry point and fails the test on any revert.
func mustCall(t *testing.T, host *sdk.MockHost, sender sdk.Address, intents []sdk.Intent, payload string, fn func(*string) *string) *string {
	t.Helper()
	ret, err := host.Call(sender, intents, strptr(payload), fn)
	require.NoError(t, err)
	return ret
}

// mustFail runs an entry point expecting a revert with the given symbol.
func mustFail(t *testing.T, host *sdk.MockHost, sender sdk.Address, intents []sdk.Intent, payload string, fn func(*string) *string, symbol string) *sdk.RevertError {
	t.Helper()
	_, err := host.Call(sender, intents, strptr(payload), fn)
	require.Error(t, err)
	re := &sdk.RevertError{}
	require.ErrorAs(t, err, &re)
	require.Equal(t, symbol, re.Symbol, "unexpected revert class: %v", err)
	return re
}

// decodeInto unmarshals a call return value into a registry type.
func decodeInto(t *testing.T, ret *string, v tinyjson.Unmarshaler) {
	t.Helper()
	require.NotNil(t, ret)
	require.NoError(t, tinyjson.Unmarshal([]byte(*ret), v))
}

// registerTestProject registers a project for ownerAddr and returns it.
func registerTestProject(t *testing.T, host *sdk.MockHost, total, price int64) registry.Project {
	t.Helper()
	payload := "Mangrove Restoration|" + strconv.FormatInt(total, 10) + "|" + strconv.FormatInt(price, 10)
	ret := mustCall(t, host, ownerAddr, nil, payload, RegisterProject)
	var prj registry.Project
	decodeInto(t, ret, &prj)
	return prj
}

// creditBalance reads a holder's per-project balance through the query surface.
func creditBalance(t *testing.T, host *sdk.MockHost, holder sdk.Address, projectID uint64) int64 {
	t.Helper()
	ret := mustCall(t, host, holder, nil, holder.String()+"|"+strconv.FormatUint(projectID, 10), GetUserCredits)
	require.NotNil(t, ret)
	n, err := strconv.ParseInt(*ret, 10, 64)
	require.NoError(t, err)
	return n
}

// reputation reads a holder's reward record.
func reputation(t *testing.T, host *sdk.MockHost, holder sdk.Address) registry.Reward {
	t.Helper()
	ret := mustCall(t, host, holder, nil, holder.String(), GetUserReputation)
	var rwd registry.Reward
	decodeInto(t, ret, &rwd)
	return rwd
}
