package main

import (
	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

// -----------------------------------------------------------------------------
// Credit Ledger
// -----------------------------------------------------------------------------
//
// Ordering rule for value-moving operations: validate everything, finalize
// every local mutation (supply, balances, reward, log), and only then touch
// the value-transfer primitive. The host rolls the whole call back if a
// transfer fails, so no partially applied state is ever observable.

// PurchaseCredits moves credits from a project's available supply into the
// caller's balance. The caller attaches value via a transfer.allow intent;
// the contract draws exactly amount*price and forwards it as two movements,
// the fee cut to the administrator and the rest to the project owner. Any
// excess attached value is never drawn. Payload: projectId|amount.
//
//go:wasmexport credits_purchase
func PurchaseCredits(payload *string) *string {
	requireInitialized()
	args := decodePurchaseArgs(payload)
	caller := getSenderAddress()

	prj := mustLoadProject(args.ProjectID)
	if args.Amount <= 0 {
		revertInvalidArgument("purchase amount must be positive")
	}
	if args.Amount > prj.Available {
		revertInsufficientBalance("purchase amount exceeds available supply")
	}

	total, err := registry.TotalPrice(args.Amount, prj.Price)
	if err != nil {
		revertInvalidArgument("purchase price overflows")
	}
	cfg := mustLoadGlobalConfig()
	if attachedValue(cfg.Asset) < total {
		revertInsufficientPayment("attached value below purchase price")
	}
	fee, toOwner := registry.SplitFee(total, cfg.FeeBps)

	// Local state first.
	prj.Available -= args.Amount
	saveProject(prj)
	setCreditBalance(caller, prj.ID, getCreditBalance(caller, prj.ID)+args.Amount)
	accrueReward(caller, args.Amount, cfg)
	appendTransaction(caller, prj.ID, args.Amount, registry.ActionPurchase)

	// Value movements last.
	sdk.HiveDraw(int64(total), cfg.Asset)
	sdk.HiveTransfer(prj.Owner, int64(toOwner), cfg.Asset)
	if fee > 0 {
		sdk.HiveTransfer(cfg.Admin, int64(fee), cfg.Asset)
	}

	emitPurchaseEvent(prj.ID, caller.String(), args.Amount, total, fee)
	return strptr("purchased")
}

// RetireCredits permanently destroys credits from the caller's balance.
// Retired credits never return to the project's available supply; the
// conserved sum available+balances shrinks for good. No value moves.
// Payload: projectId|amount.
//
//go:wasmexport credits_retire
func RetireCredits(payload *string) *string {
	requireInitialized()
	args := decodeRetireArgs(payload)
	caller := getSenderAddress()

	prj := mustLoadProject(args.ProjectID)
	if args.Amount <= 0 {
		revertInvalidArgument("retire amount must be positive")
	}
	balance := getCreditBalance(caller, prj.ID)
	if args.Amount > balance {
		revertInsufficientBalance("retire amount exceeds holder balance")
	}

	cfg := mustLoadGlobalConfig()
	setCreditBalance(caller, prj.ID, balance-args.Amount)
	accrueReward(caller, args.Amount, cfg)
	appendTransaction(caller, prj.ID, args.Amount, registry.ActionRetire)

	emitRetireEvent(prj.ID, caller.String(), args.Amount)
	return strptr("retired")
}

// TransferCredits moves credits between holders for a flat fee paid to the
// administrator. Only the sender accrues reward points. Payload:
// recipient|projectId|amount.
//
//go:wasmexport credits_transfer
func TransferCredits(payload *string) *string {
	requireInitialized()
	args := decodeTransferArgs(payload)
	caller := getSenderAddress()

	if !args.To.IsValid() {
		revertInvalidArgument("invalid recipient address")
	}
	prj := mustLoadProject(args.ProjectID)
	if args.Amount <= 0 {
		revertInvalidArgument("transfer amount must be positive")
	}
	senderBalance := getCreditBalance(caller, prj.ID)
	if args.Amount > senderBalance {
		revertInsufficientBalance("transfer amount exceeds sender balance")
	}
	cfg := mustLoadGlobalConfig()
	if attachedValue(cfg.Asset) < cfg.TransferFee {
		revertInsufficientPayment("attached value below transfer fee")
	}

	// Local state first.
	setCreditBalance(caller, prj.ID, senderBalance-args.Amount)
	setCreditBalance(args.To, prj.ID, getCreditBalance(args.To, prj.ID)+args.Amount)
	accrueReward(caller, args.Amount, cfg)
	appendTransaction(caller, prj.ID, args.Amount, registry.ActionTransfer)

	// Value movement last.
	if cfg.TransferFee > 0 {
		sdk.HiveDraw(int64(cfg.TransferFee), cfg.Asset)
		sdk.HiveTransfer(cfg.Admin, int64(cfg.TransferFee), cfg.Asset)
	}

	emitTransferEvent(prj.ID, caller.String(), args.To.String(), args.Amount, cfg.TransferFee)
	return strptr("transferred")
}

// GetUserCredits returns a holder's balance for one project as bare digits.
// Payload: holder|projectId.
//
//go:wasmexport credits_balance
func GetUserCredits(payload *string) *string {
	requireInitialized()
	holder, projectID := decodeBalanceQueryArgs(payload)
	mustLoadProject(projectID)
	balance := getCreditBalance(holder, projectID)
	return strptr(formatAmount(balance))
}
