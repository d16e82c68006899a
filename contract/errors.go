package main

import "offset_registry/sdk"

// Failure taxonomy. Every rejection reverts with one of these symbols so a
// caller (or test) can assert on the class, not just failure/success.
const (
	symAuthorization       = "authorization"
	symNotFound            = "not_found"
	symInvalidArgument     = "invalid_argument"
	symInsufficientBalance = "insufficient_balance"
	symInsufficientPayment = "insufficient_payment"
	symInvalidState        = "invalid_state"
)

func revertAuthorization(msg string) {
	sdk.Revert(msg, symAuthorization)
}

func revertNotFound(msg string) {
	sdk.Revert(msg, symNotFound)
}

func revertInvalidArgument(msg string) {
	sdk.Revert(msg, symInvalidArgument)
}

func revertInsufficientBalance(msg string) {
	sdk.Revert(msg, symInsufficientBalance)
}

func revertInsufficientPayment(msg string) {
	sdk.Revert(msg, symInsufficientPayment)
}

func revertInvalidState(msg string) {
	sdk.Revert(msg, symInvalidState)
}
