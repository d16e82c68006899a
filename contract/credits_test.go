package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

func TestPurchaseCredits(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")

	// 100 credits at 10 each: total 1000, 1% fee 10, owner gets 990.
	ret := mustCall(t, host, buyerAddr, hiveAllow(1000), "1|100", PurchaseCredits)
	require.NotNil(t, ret)
	assert.Equal(t, "purchased", *ret)

	assert.Equal(t, int64(100), creditBalance(t, host, buyerAddr, prj.ID))
	assert.Equal(t, int64(4000), host.BalanceOf(buyerAddr, "hive"))
	assert.Equal(t, int64(990), host.BalanceOf(ownerAddr, "hive"))
	assert.Equal(t, int64(10), host.BalanceOf(adminAddr, "hive"))
	assert.Equal(t, int64(0), host.BalanceOf(host.ContractAddress(), "hive"))

	var updated registry.Project
	decodeInto(t, mustCall(t, host, buyerAddr, nil, "1", GetProject), &updated)
	assert.Equal(t, registry.Amount(900), updated.Available)

	rwd := reputation(t, host, buyerAddr)
	assert.Equal(t, uint64(100), rwd.Points)
	assert.Equal(t, registry.BadgeContributor, rwd.Badge)
}

// Only amount*price is drawn; attached allowance above the price stays with
// the buyer.
func TestPurchaseLeavesExcessAllowanceUntouched(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")

	mustCall(t, host, buyerAddr, hiveAllow(5000), "1|10", PurchaseCredits)
	assert.Equal(t, int64(4900), host.BalanceOf(buyerAddr, "hive"))
}

func TestPurchaseFailureMatrix(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")

	// Unknown project.
	mustFail(t, host, buyerAddr, hiveAllow(1000), "9|100", PurchaseCredits, "not_found")
	// Non-positive amounts.
	mustFail(t, host, buyerAddr, hiveAllow(1000), "1|0", PurchaseCredits, "invalid_argument")
	mustFail(t, host, buyerAddr, hiveAllow(1000), "1|-5", PurchaseCredits, "invalid_argument")
	// More than the available supply.
	mustFail(t, host, buyerAddr, hiveAllow(20000), "1|1001", PurchaseCredits, "insufficient_balance")
	// Attached value below the price.
	mustFail(t, host, buyerAddr, hiveAllow(999), "1|100", PurchaseCredits, "insufficient_payment")
	mustFail(t, host, buyerAddr, nil, "1|100", PurchaseCredits, "insufficient_payment")

	// Nothing stuck: no credits, no money moved.
	assert.Equal(t, int64(0), creditBalance(t, host, buyerAddr, 1))
	assert.Equal(t, int64(5000), host.BalanceOf(buyerAddr, "hive"))
	assert.Equal(t, int64(0), host.BalanceOf(ownerAddr, "hive"))
}

func TestPurchasePriceOverflowRejected(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	mustCall(t, host, ownerAddr, nil, "Forest|9223372036854775807|9223372036854775807", RegisterProject)
	host.Deposit(buyerAddr, 5000, "hive")

	mustFail(t, host, buyerAddr, hiveAllow(5000), "1|9223372036854775807", PurchaseCredits, "invalid_argument")
}

// A revert after local mutations leaves no trace: the allowance covers the
// price so validation passes, but the buyer cannot actually fund the draw,
// which fails after supply, balance, reward and history were already
// written. The host must roll all of it back.
func TestFailedDrawRollsBackLocalState(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 500, "hive")

	_, err := host.Call(buyerAddr, hiveAllow(1000), strptr("1|100"), PurchaseCredits)
	require.Error(t, err)

	var after registry.Project
	decodeInto(t, mustCall(t, host, buyerAddr, nil, "1", GetProject), &after)
	assert.Equal(t, registry.Amount(1000), after.Available)
	assert.Equal(t, int64(0), creditBalance(t, host, buyerAddr, prj.ID))
	assert.Equal(t, uint64(0), reputation(t, host, buyerAddr).Points)
	assert.Equal(t, int64(500), host.BalanceOf(buyerAddr, "hive"))

	var history registry.TransactionList
	decodeInto(t, mustCall(t, host, buyerAddr, nil, "", GetAllTransactions), &history)
	assert.Len(t, history, 0)
}

func TestRetireCredits(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")
	mustCall(t, host, buyerAddr, hiveAllow(500), "1|50", PurchaseCredits)

	ret := mustCall(t, host, buyerAddr, nil, "1|30", RetireCredits)
	require.NotNil(t, ret)
	assert.Equal(t, "retired", *ret)

	// Retired credits are destroyed, not returned to the supply.
	assert.Equal(t, int64(20), creditBalance(t, host, buyerAddr, prj.ID))
	var after registry.Project
	decodeInto(t, mustCall(t, host, buyerAddr, nil, "1", GetProject), &after)
	assert.Equal(t, registry.Amount(950), after.Available)

	// Retiring accrues points too: 50 from the purchase, 30 from the retire.
	assert.Equal(t, uint64(80), reputation(t, host, buyerAddr).Points)
}

func TestRetireFailures(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")
	mustCall(t, host, buyerAddr, hiveAllow(500), "1|50", PurchaseCredits)

	mustFail(t, host, buyerAddr, nil, "1|51", RetireCredits, "insufficient_balance")
	mustFail(t, host, buyerAddr, nil, "1|0", RetireCredits, "invalid_argument")
	mustFail(t, host, buyerAddr, nil, "9|10", RetireCredits, "not_found")
	// A holder with nothing cannot retire.
	mustFail(t, host, otherAddr, nil, "1|1", RetireCredits, "insufficient_balance")
}

func TestTransferCredits(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")
	mustCall(t, host, buyerAddr, hiveAllow(500), "1|50", PurchaseCredits)

	ret := mustCall(t, host, buyerAddr, hiveAllow(10), otherAddr.String()+"|1|20", TransferCredits)
	require.NotNil(t, ret)
	assert.Equal(t, "transferred", *ret)

	assert.Equal(t, int64(30), creditBalance(t, host, buyerAddr, prj.ID))
	assert.Equal(t, int64(20), creditBalance(t, host, otherAddr, prj.ID))

	// Flat transfer fee of 10 went to the administrator; 5 from the purchase
	// fee is already there (500 * 1%).
	assert.Equal(t, int64(15), host.BalanceOf(adminAddr, "hive"))

	// Sender accrues, recipient does not.
	assert.Equal(t, uint64(70), reputation(t, host, buyerAddr).Points)
	assert.Equal(t, uint64(0), reputation(t, host, otherAddr).Points)
}

func TestTransferFailures(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")
	mustCall(t, host, buyerAddr, hiveAllow(500), "1|50", PurchaseCredits)

	mustFail(t, host, buyerAddr, hiveAllow(10), "garbage|1|20", TransferCredits, "invalid_argument")
	mustFail(t, host, buyerAddr, hiveAllow(10), otherAddr.String()+"|1|0", TransferCredits, "invalid_argument")
	mustFail(t, host, buyerAddr, hiveAllow(10), otherAddr.String()+"|1|51", TransferCredits, "insufficient_balance")
	mustFail(t, host, buyerAddr, hiveAllow(10), otherAddr.String()+"|9|20", TransferCredits, "not_found")
	// Transfer fee must be covered by attached value.
	mustFail(t, host, buyerAddr, hiveAllow(9), otherAddr.String()+"|1|20", TransferCredits, "insufficient_payment")
	mustFail(t, host, buyerAddr, nil, otherAddr.String()+"|1|20", TransferCredits, "insufficient_payment")
}

// Supply conservation across a mixed sequence of operations: for every
// project, available plus all holder balances plus retired equals total.
func TestSupplyConservation(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	prj := registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 10_000, "hive")

	mustCall(t, host, buyerAddr, hiveAllow(2000), "1|200", PurchaseCredits)
	mustCall(t, host, buyerAddr, hiveAllow(10), otherAddr.String()+"|1|60", TransferCredits)
	mustCall(t, host, buyerAddr, nil, "1|40", RetireCredits)
	mustCall(t, host, buyerAddr, hiveAllow(500), "1|50", PurchaseCredits)

	var after registry.Project
	decodeInto(t, mustCall(t, host, buyerAddr, nil, "1", GetProject), &after)

	held := creditBalance(t, host, buyerAddr, prj.ID) + creditBalance(t, host, otherAddr, prj.ID)
	retired := int64(40)
	assert.Equal(t, int64(after.Total), int64(after.Available)+held+retired)
}

func TestPurchaseWithZeroFee(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)
	mustCall(t, host, adminAddr, nil, "0|0", SetFees)
	host.Deposit(buyerAddr, 5000, "hive")

	mustCall(t, host, buyerAddr, hiveAllow(1000), "1|100", PurchaseCredits)
	assert.Equal(t, int64(1000), host.BalanceOf(ownerAddr, "hive"))
	assert.Equal(t, int64(0), host.BalanceOf(adminAddr, "hive"))

	// Zero transfer fee means transfers need no attached value at all.
	mustCall(t, host, buyerAddr, nil, otherAddr.String()+"|1|10", TransferCredits)
	assert.Equal(t, int64(10), creditBalance(t, host, otherAddr, 1))
}

func TestPurchaseEmitsEvent(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)
	host.Deposit(buyerAddr, 5000, "hive")
	mustCall(t, host, buyerAddr, hiveAllow(1000), "1|100", PurchaseCredits)

	found := false
	for _, line := range host.Logs() {
		if line == "buy|id:1|by:"+buyerAddr.String()+"|am:100|tp:1000|fee:10" {
			found = true
		}
	}
	assert.True(t, found, "purchase event missing from log: %v", host.Logs())
}

func TestCreditBalanceQueryForUnknownHolder(t *testing.T) {
	host := newTestHost(t)
	initPublic(t, host)
	registerTestProject(t, host, 1000, 10)

	assert.Equal(t, int64(0), creditBalance(t, host, sdk.Address("hive:nobody"), 1))
	mustFail(t, host, buyerAddr, nil, buyerAddr.String()+"|7", GetUserCredits, "not_found")
}
