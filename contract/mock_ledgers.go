//go:build !wasm

package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Mock collaborator ledgers for the non-wasm runtime. They speak the same
// wire protocol the real ledgers do, so tests and the local harness exercise
// the full encode/decode path of the clients above.

// MockFungibleLedger is an in-memory fungible token actor with balances and
// a fixed decimal scale. transfer_from moves balances without an allowance
// model; tests fund accounts directly.
type MockFungibleLedger struct {
	Decimals uint8
	Balances map[sdk.Address]*uint256.Int

	// RejectCalls makes every call come back as an outright rejection,
	// i.e. a nil reply to the suspended caller.
	RejectCalls bool
	// RefuseTransfers acks calls but answers transfers with ok:false.
	RefuseTransfers bool
}

// NewMockFungibleLedger returns an empty ledger with the given scale.
func NewMockFungibleLedger(decimals uint8) *MockFungibleLedger {
	return &MockFungibleLedger{
		Decimals: decimals,
		Balances: map[sdk.Address]*uint256.Int{},
	}
}

// Fund credits an account, replacing its balance.
func (m *MockFungibleLedger) Fund(addr sdk.Address, amount *uint256.Int) {
	m.Balances[addr] = amount.Clone()
}

// BalanceOf returns the account balance, zero if unknown.
func (m *MockFungibleLedger) BalanceOf(addr sdk.Address) *uint256.Int {
	if b, ok := m.Balances[addr]; ok {
		return b.Clone()
	}
	return new(uint256.Int)
}

func (m *MockFungibleLedger) HandleCall(method string, payload string) (*string, bool) {
	if m.RejectCalls {
		return nil, false
	}
	switch method {
	case methodDecimals:
		w := jwriter.Writer{}
		w.RawString(`{"decimals":`)
		w.Uint8(m.Decimals)
		w.RawByte('}')
		return buildMockReply(&w), true
	case methodTransferFrom:
		from, to, amount := decodeMockTransfer(payload)
		return m.move(from, to, amount), true
	case methodTransfer:
		// the ledger resolves the sender itself; the mock trusts the caller
		// is the sale contract
		_, to, amount := decodeMockTransfer(payload)
		return m.move(sdk.Address(sdk.Host.Env.ContractId), to, amount), true
	default:
		return nil, false
	}
}

func (m *MockFungibleLedger) move(from, to sdk.Address, amount *uint256.Int) *string {
	if m.RefuseTransfers || m.BalanceOf(from).Lt(amount) {
		return ackReply(false)
	}
	m.Balances[from] = new(uint256.Int).Sub(m.BalanceOf(from), amount)
	m.Balances[to] = new(uint256.Int).Add(m.BalanceOf(to), amount)
	return ackReply(true)
}

// MockStakingLedger answers stake_of from a static stake table.
type MockStakingLedger struct {
	Stakes map[sdk.Address]*uint256.Int

	RejectCalls bool
}

// NewMockStakingLedger returns a ledger with no stakes.
func NewMockStakingLedger() *MockStakingLedger {
	return &MockStakingLedger{Stakes: map[sdk.Address]*uint256.Int{}}
}

// SetStake records an account's staked balance.
func (m *MockStakingLedger) SetStake(addr sdk.Address, amount *uint256.Int) {
	m.Stakes[addr] = amount.Clone()
}

func (m *MockStakingLedger) HandleCall(method string, payload string) (*string, bool) {
	if m.RejectCalls || method != methodStakeOf {
		return nil, false
	}
	account := decodeMockAccount(payload)
	stake := new(uint256.Int)
	if s, ok := m.Stakes[account]; ok {
		stake = s
	}
	w := jwriter.Writer{}
	w.RawString(`{"stake":`)
	w.String(stake.Dec())
	w.RawByte('}')
	return buildMockReply(&w), true
}

func decodeMockTransfer(payload string) (from, to sdk.Address, amount *uint256.Int) {
	amount = new(uint256.Int)
	l := jlexer.Lexer{Data: []byte(payload)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "from":
			from = sdk.Address(l.String())
		case "to":
			to = sdk.Address(l.String())
		case "amount":
			if v, err := uint256.FromDecimal(l.String()); err == nil {
				amount = v
			}
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	return from, to, amount
}

func decodeMockAccount(payload string) sdk.Address {
	var account sdk.Address
	l := jlexer.Lexer{Data: []byte(payload)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if key == "account" {
			account = sdk.Address(l.String())
		} else {
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	return account
}

func ackReply(ok bool) *string {
	w := jwriter.Writer{}
	w.RawString(`{"ok":`)
	w.Bool(ok)
	w.RawByte('}')
	return buildMockReply(&w)
}

func buildMockReply(w *jwriter.Writer) *string {
	data, err := w.BuildBytes()
	if err != nil {
		panic(err)
	}
	return strptr(string(data))
}
