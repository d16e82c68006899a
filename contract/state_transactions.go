package main

import (
	"fmt"
	"strconv"
	"strings"

	tinyjson "github.com/CosmWasm/tinyjson"

	"offset_registry/contract/registry"
	"offset_registry/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Transaction Log (append-only)
////////////////////////////////////////////////////////////////////////////////

// appendTransaction writes one immutable history record. The dense sequence
// counter is the global ordered view; the per-holder index lists the same
// record a second time, restricted to its actor. Records are never mutated
// or removed.
func appendTransaction(actor sdk.Address, projectID uint64, amount registry.Amount, action registry.ActionKind) *registry.Transaction {
	seq := nextID(TransactionsCount)
	tx := &registry.Transaction{
		Seq:       seq,
		Actor:     actor,
		ProjectID: projectID,
		Amount:    amount,
		Action:    action,
		Timestamp: nowUnix(),
	}
	b, err := tinyjson.Marshal(tx)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal transaction %d: %v", seq, err))
	}
	sdk.StateSetObject(transactionKey(seq), string(b))
	appendHolderTxIndex(actor, seq)
	return tx
}

func loadTransaction(seq uint64) (*registry.Transaction, error) {
	ptr := sdk.StateGetObject(transactionKey(seq))
	if ptr == nil {
		return nil, fmt.Errorf("transaction %d not found", seq)
	}
	var tx registry.Transaction
	if err := tinyjson.Unmarshal([]byte(*ptr), &tx); err != nil {
		return nil, fmt.Errorf("failed unmarshal transaction %d: %v", seq, err)
	}
	return &tx, nil
}

func appendHolderTxIndex(holder sdk.Address, seq uint64) {
	key := holderTxIndexKey(holder)
	entry := strconv.FormatUint(seq, 10)
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		sdk.StateSetObject(key, entry)
		return
	}
	sdk.StateSetObject(key, *ptr+","+entry)
}

func listHolderTxSeqs(holder sdk.Address) []uint64 {
	ptr := sdk.StateGetObject(holderTxIndexKey(holder))
	if ptr == nil || *ptr == "" {
		return nil
	}
	parts := strings.Split(*ptr, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.ParseUint(p, 10, 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// listAllTransactions returns the global ordered sequence.
func listAllTransactions() registry.TransactionList {
	count := getCount(TransactionsCount)
	out := make(registry.TransactionList, 0, count)
	for seq := uint64(1); seq <= count; seq++ {
		if tx, err := loadTransaction(seq); err == nil {
			out = append(out, *tx)
		}
	}
	return out
}

// listHolderTransactions returns one holder's ordered sequence.
func listHolderTransactions(holder sdk.Address) registry.TransactionList {
	seqs := listHolderTxSeqs(holder)
	out := make(registry.TransactionList, 0, len(seqs))
	for _, seq := range seqs {
		if tx, err := loadTransaction(seq); err == nil {
			out = append(out, *tx)
		}
	}
	return out
}
