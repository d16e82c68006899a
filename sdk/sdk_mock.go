package sdk

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// RevertError is how a failed call surfaces outside the mock host: Msg holds
// the human message, Symbol the failure class a caller can match on.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("%s: %s", e.Symbol, e.Msg)
}

// MockHost is an in-memory stand-in for the ledger execution environment.
// It reproduces the two guarantees the chain gives a contract: whole-call
// atomicity (state and balances roll back when a call reverts) and value
// draws capped by the transfer.allow intent of the current call.
type MockHost struct {
	state    map[string]string
	balances map[Address]map[Asset]int64
	env      Env
	drawn    int64
	logs     []string
}

// NewMockHost builds a host with an empty state and a fixed block context.
func NewMockHost() *MockHost {
	return &MockHost{
		state:    map[string]string{},
		balances: map[Address]map[Asset]int64{},
		env: Env{
			ContractId:  "vsctestcontract",
			BlockId:     "block1",
			BlockHeight: 1,
			Timestamp:   "1767225600",
		},
	}
}

// Deposit credits a test account so it can attach value to calls.
func (m *MockHost) Deposit(addr Address, amount int64, asset Asset) {
	if m.balances[addr] == nil {
		m.balances[addr] = map[Asset]int64{}
	}
	m.balances[addr][asset] += amount
}

// BalanceOf lets tests assert on post-call balances without going through Host.
func (m *MockHost) BalanceOf(addr Address, asset Asset) int64 {
	return m.balances[addr][asset]
}

// SetBlockTime overrides the block timestamp (unix seconds as string).
func (m *MockHost) SetBlockTime(ts string) {
	m.env.Timestamp = ts
}

// Logs returns every line emitted so far, oldest first.
func (m *MockHost) Logs() []string {
	return m.logs
}

// ContractAddress is where drawn funds sit until the contract pays them out.
func (m *MockHost) ContractAddress() Address {
	return Address("contract:" + m.env.ContractId)
}

// Call executes fn as one indivisible ledger call: fresh tx id, the given
// sender and intents, and a full state+balance snapshot that is restored if
// the call aborts or reverts. This mirrors the chain behavior where a failed
// call leaves no trace.
func (m *MockHost) Call(sender Address, intents []Intent, payload *string, fn func(*string) *string) (ret *string, err error) {
	m.env.TxId = uuid.NewString()
	m.env.Sender = Sender{
		Address:       sender,
		RequiredAuths: []Address{sender},
	}
	m.env.Intents = intents
	m.drawn = 0

	stateSnap := make(map[string]string, len(m.state))
	for k, v := range m.state {
		stateSnap[k] = v
	}
	balSnap := make(map[Address]map[Asset]int64, len(m.balances))
	for addr, assets := range m.balances {
		cp := make(map[Asset]int64, len(assets))
		for as, v := range assets {
			cp[as] = v
		}
		balSnap[addr] = cp
	}

	defer func() {
		if r := recover(); r != nil {
			m.state = stateSnap
			m.balances = balSnap
			if re, ok := r.(*RevertError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()

	ret = fn(payload)
	return ret, nil
}

// --- Host implementation ---

func (m *MockHost) Log(s string) {
	m.logs = append(m.logs, s)
}

func (m *MockHost) StateSetObject(key string, value string) {
	m.state[key] = value
}

func (m *MockHost) StateGetObject(key string) *string {
	val, ok := m.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockHost) StateDeleteObject(key string) {
	delete(m.state, key)
}

func (m *MockHost) GetEnv() Env {
	return m.env
}

func (m *MockHost) GetEnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = m.env.TxId
	case "block.timestamp":
		val = m.env.Timestamp
	case "block.id":
		val = m.env.BlockId
	case "block.height":
		val = strconv.FormatUint(m.env.BlockHeight, 10)
	case "contract.id":
		val = m.env.ContractId
	default:
		return nil
	}
	return &val
}

func (m *MockHost) GetBalance(address Address, asset Asset) int64 {
	return m.balances[address][asset]
}

// HiveDraw pulls funds from the call sender into the contract account,
// enforcing the transfer.allow intent limit the way the chain does.
func (m *MockHost) HiveDraw(amount int64, asset Asset) {
	if amount <= 0 {
		m.Abort("draw amount must be positive")
	}
	limit, ok := m.allowLimit(asset)
	if !ok {
		m.Abort("no transfer.allow intent for " + asset.String())
	}
	if m.drawn+amount > limit {
		m.Abort("transfer.allow limit exceeded")
	}
	sender := m.env.Sender.Address
	if m.balances[sender][asset] < amount {
		m.Abort("insufficient balance for draw")
	}
	m.drawn += amount
	m.balances[sender][asset] -= amount
	m.Deposit(m.ContractAddress(), amount, asset)
}

// HiveTransfer moves contract-held funds towards a user address.
func (m *MockHost) HiveTransfer(to Address, amount int64, asset Asset) {
	if amount <= 0 {
		m.Abort("transfer amount must be positive")
	}
	self := m.ContractAddress()
	if m.balances[self][asset] < amount {
		m.Abort("insufficient contract balance")
	}
	m.balances[self][asset] -= amount
	m.Deposit(to, amount, asset)
}

func (m *MockHost) Abort(msg string) {
	panic(&RevertError{Msg: msg, Symbol: "abort"})
}

func (m *MockHost) Revert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

func (m *MockHost) allowLimit(asset Asset) (int64, bool) {
	for _, intent := range m.env.Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
		if err != nil {
			return 0, false
		}
		return limit, true
	}
	return 0, false
}
