//go:build !wasm

package sdk

import "fmt"

// Collaborator handles a cross-contract call in the mock runtime. A false ok
// simulates the collaborator actor rejecting the call outright.
type Collaborator interface {
	HandleCall(method string, payload string) (reply *string, ok bool)
}

// ValueTransferRecord is one native-currency payout the contract made.
type ValueTransferRecord struct {
	To     Address
	Amount string
}

// MockHost is the in-process stand-in for the wasm host. Tests and the local
// harness script it: install state, set the env, register collaborator
// ledgers, then call exported contract handlers directly.
type MockHost struct {
	Env       Env
	State     State
	Contracts map[string]Collaborator
	Transfers []ValueTransferRecord
	LogLines  []string

	// FailValueTransfers makes every ValueTransfer report host rejection.
	FailValueTransfers bool

	// OnCall runs after a cross-contract call is dispatched but before its
	// reply is returned, i.e. while the calling handler is suspended. Tests
	// use it to interleave other handler invocations at the suspension point.
	OnCall func(contractId, method string)

	txSeq uint64
}

// Host is the process-wide mock host instance backing the sdk API.
var Host = NewMockHost()

// NewMockHost returns a host with empty in-memory state and no collaborators.
func NewMockHost() *MockHost {
	return &MockHost{
		State:     NewMapState(),
		Contracts: map[string]Collaborator{},
	}
}

// Reset drops state, env, collaborators and recorded effects.
func (h *MockHost) Reset() {
	h.Env = Env{}
	h.State = NewMapState()
	h.Contracts = map[string]Collaborator{}
	h.Transfers = nil
	h.LogLines = nil
	h.FailValueTransfers = false
	h.OnCall = nil
}

// nextTx makes the current env read as a fresh transaction. Env snapshots
// are cached per tx.id on the contract side, so every env mutation must look
// like a new message.
func (h *MockHost) nextTx() {
	h.txSeq++
	h.Env.TxId = fmt.Sprintf("mock-tx-%d", h.txSeq)
}

// SetSender points msg.sender at the given account for subsequent calls.
func (h *MockHost) SetSender(addr Address) {
	h.Env.Sender = Sender{Address: addr, RequiredAuths: []Address{addr}}
	h.nextTx()
}

// SetTimestamp sets the block timestamp in milliseconds.
func (h *MockHost) SetTimestamp(ms string) {
	h.Env.Timestamp = ms
	h.nextTx()
}

// SetValue attaches native currency (decimal u128) to the next message.
func (h *MockHost) SetValue(amount string) {
	h.Env.Value = amount
	h.nextTx()
}

// RegisterContract installs a collaborator actor at the given address.
func (h *MockHost) RegisterContract(id Address, c Collaborator) {
	h.Contracts[id.String()] = c
}

// TransfersTo returns the recorded payouts made to one account.
func (h *MockHost) TransfersTo(addr Address) []ValueTransferRecord {
	var out []ValueTransferRecord
	for _, tr := range h.Transfers {
		if tr.To == addr {
			out = append(out, tr)
		}
	}
	return out
}

// MapState is the default in-memory kv store.
type MapState struct {
	db map[string]string
}

// NewMapState returns an empty in-memory store.
func NewMapState() *MapState {
	return &MapState{db: map[string]string{}}
}

func (m *MapState) Set(key, value string) {
	m.db[key] = value
}

func (m *MapState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MapState) Delete(key string) {
	delete(m.db, key)
}
