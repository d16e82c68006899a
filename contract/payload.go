package main

import (
	"fmt"
	"strconv"
	"strings"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Payload decoding (pipe-delimited call arguments)
////////////////////////////////////////////////////////////////////////////////

type RegisterProjectArgs struct {
	Name  string
	Total registry.Amount
	Price registry.Amount
}

type UpdateProjectArgs struct {
	ProjectID uint64
	Name      string
	Total     registry.Amount
	Price     registry.Amount
}

type PurchaseArgs struct {
	ProjectID uint64
	Amount    registry.Amount
}

type RetireArgs struct {
	ProjectID uint64
	Amount    registry.Amount
}

type TransferArgs struct {
	To        sdk.Address
	ProjectID uint64
	Amount    registry.Amount
}

type VoteArgs struct {
	ProposalID uint64
	Support    bool
}

// decodeRegisterProjectArgs unpacks `name|totalCredits|pricePerCredit`.
func decodeRegisterProjectArgs(payload *string) *RegisterProjectArgs {
	parts := splitPayload(payload, 3, "project payload requires name|totalCredits|pricePerCredit")
	return &RegisterProjectArgs{
		Name:  strings.TrimSpace(parts[0]),
		Total: parseAmountField(parts[1], "total credits"),
		Price: parseAmountField(parts[2], "price per credit"),
	}
}

// decodeUpdateProjectArgs unpacks `projectId|name|totalCredits|pricePerCredit`.
func decodeUpdateProjectArgs(payload *string) *UpdateProjectArgs {
	parts := splitPayload(payload, 4, "update payload requires projectId|name|totalCredits|pricePerCredit")
	return &UpdateProjectArgs{
		ProjectID: parseUintField(parts[0], "project id"),
		Name:      strings.TrimSpace(parts[1]),
		Total:     parseAmountField(parts[2], "total credits"),
		Price:     parseAmountField(parts[3], "price per credit"),
	}
}

// decodePurchaseArgs unpacks `projectId|amount`.
func decodePurchaseArgs(payload *string) *PurchaseArgs {
	parts := splitPayload(payload, 2, "purchase payload requires projectId|amount")
	return &PurchaseArgs{
		ProjectID: parseUintField(parts[0], "project id"),
		Amount:    parseAmountField(parts[1], "amount"),
	}
}

// decodeRetireArgs unpacks `projectId|amount`.
func decodeRetireArgs(payload *string) *RetireArgs {
	parts := splitPayload(payload, 2, "retire payload requires projectId|amount")
	return &RetireArgs{
		ProjectID: parseUintField(parts[0], "project id"),
		Amount:    parseAmountField(parts[1], "amount"),
	}
}

// decodeTransferArgs unpacks `recipient|projectId|amount`.
func decodeTransferArgs(payload *string) *TransferArgs {
	parts := splitPayload(payload, 3, "transfer payload requires recipient|projectId|amount")
	return &TransferArgs{
		To:        sdk.Address(strings.TrimSpace(parts[0])),
		ProjectID: parseUintField(parts[1], "project id"),
		Amount:    parseAmountField(parts[2], "amount"),
	}
}

// decodeVoteArgs unpacks `proposalId|support`.
func decodeVoteArgs(payload *string) *VoteArgs {
	parts := splitPayload(payload, 2, "vote payload requires proposalId|support")
	return &VoteArgs{
		ProposalID: parseUintField(parts[0], "proposal id"),
		Support:    parseBoolField(parts[1]),
	}
}

// decodeThresholdArgs unpacks `badge|threshold`.
func decodeThresholdArgs(payload *string) (string, uint64) {
	parts := splitPayload(payload, 2, "threshold payload requires badge|value")
	return strings.TrimSpace(parts[0]), parseUintField(parts[1], "threshold")
}

// decodeFeeArgs unpacks `feeBps|transferFee`.
func decodeFeeArgs(payload *string) (uint64, registry.Amount) {
	parts := splitPayload(payload, 2, "fee payload requires feeBps|transferFee")
	feeBps := parseUintField(parts[0], "fee bps")
	transferFee := strings.TrimSpace(parts[1])
	fee, err := strconv.ParseInt(transferFee, 10, 64)
	if err != nil || fee < 0 {
		sdk.Abort("invalid transfer fee")
	}
	return feeBps, registry.Amount(fee)
}

// decodeBalanceQueryArgs unpacks `holder|projectId`.
func decodeBalanceQueryArgs(payload *string) (sdk.Address, uint64) {
	parts := splitPayload(payload, 2, "balance payload requires holder|projectId")
	return sdk.Address(strings.TrimSpace(parts[0])), parseUintField(parts[1], "project id")
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// splitPayload unwraps and splits, aborting when fewer than want fields arrive.
func splitPayload(payload *string, want int, errMsg string) []string {
	raw := unwrapPayload(payload, errMsg)
	parts := strings.Split(raw, "|")
	if len(parts) < want {
		sdk.Abort(errMsg)
	}
	return parts
}

// parseUintField is used for ids, counters and thresholds.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAmountField parses a signed integer; sign checks stay with the
// operations so they can revert with the invalid_argument symbol.
func parseAmountField(val string, field string) registry.Amount {
	val = strings.TrimSpace(val)
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return registry.Amount(n)
}

// parseBoolField accepts a couple of truthy keywords, defaulting to false.
func parseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y", "for":
		return true
	default:
		return false
	}
}

// strptr is a tiny helper so we can hand a literal string pointer to sdk calls.
func strptr(s string) *string { return &s }
