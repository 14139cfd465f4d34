package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Cross-actor call protocol. Each client method sends one typed request to a
// collaborator ledger and suspends the handler until the reply arrives.
// A nil reply (collaborator rejected) or a reply of unexpected shape ends the
// request with external_call_failed; mutations committed before the call
// stay, mutations after it never happen.

// ftClient talks to the fungible-token ledger holding the sale token.
type ftClient struct {
	token sdk.Address
}

// decimals queries the token's live decimal scale.
func (c ftClient) decimals() (uint8, *SaleError) {
	reply := sdk.ContractCall(c.token.String(), methodDecimals, "{}")
	if reply == nil {
		return 0, fail(ErrExternalCallFailed, "token ledger rejected decimals query")
	}
	var decimals uint64
	found := false
	l := jlexer.Lexer{Data: []byte(*reply)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "decimals":
			decimals = l.Uint64()
			found = true
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil || !found || decimals > 255 {
		return 0, fail(ErrExternalCallFailed, "undecodable decimals reply")
	}
	return uint8(decimals), nil
}

// transferFrom moves sale tokens between accounts in the ledger's custody
// model; the sale contract must be an approved spender for the from account.
func (c ftClient) transferFrom(from, to sdk.Address, amount *uint256.Int) *SaleError {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"from":`)
	w.String(from.String())
	w.RawString(`,"to":`)
	w.String(to.String())
	w.RawString(`,"amount":`)
	w.String(amount.Dec())
	w.RawByte('}')
	payload, err := w.BuildBytes()
	if err != nil {
		return fail(ErrExternalCallFailed, "failed to build transfer_from payload")
	}
	return c.expectAck(sdk.ContractCall(c.token.String(), methodTransferFrom, string(payload)))
}

// transfer moves sale tokens out of the contract's own balance.
func (c ftClient) transfer(to sdk.Address, amount *uint256.Int) *SaleError {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"to":`)
	w.String(to.String())
	w.RawString(`,"amount":`)
	w.String(amount.Dec())
	w.RawByte('}')
	payload, err := w.BuildBytes()
	if err != nil {
		return fail(ErrExternalCallFailed, "failed to build transfer payload")
	}
	return c.expectAck(sdk.ContractCall(c.token.String(), methodTransfer, string(payload)))
}

// expectAck decodes a {"ok":bool} reply and maps anything else to a failure.
func (c ftClient) expectAck(reply *string) *SaleError {
	if reply == nil {
		return fail(ErrExternalCallFailed, "token ledger rejected the transfer")
	}
	acked := false
	l := jlexer.Lexer{Data: []byte(*reply)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "ok":
			acked = l.Bool()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil {
		return fail(ErrExternalCallFailed, "undecodable transfer reply")
	}
	if !acked {
		return fail(ErrExternalCallFailed, "token ledger refused the transfer")
	}
	return nil
}

// stakingClient talks to the staking ledger gating registration.
type stakingClient struct {
	staking sdk.Address
}

// stakeOf queries the user's staked balance.
func (c stakingClient) stakeOf(user sdk.Address) (*uint256.Int, *SaleError) {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"account":`)
	w.String(user.String())
	w.RawByte('}')
	payload, err := w.BuildBytes()
	if err != nil {
		return nil, fail(ErrExternalCallFailed, "failed to build stake_of payload")
	}
	reply := sdk.ContractCall(c.staking.String(), methodStakeOf, string(payload))
	if reply == nil {
		return nil, fail(ErrExternalCallFailed, "staking ledger rejected stake_of query")
	}
	var stakeStr string
	found := false
	l := jlexer.Lexer{Data: []byte(*reply)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "stake":
			stakeStr = l.String()
			found = true
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil || !found {
		return nil, fail(ErrExternalCallFailed, "undecodable stake_of reply")
	}
	stake, convErr := uint256.FromDecimal(stakeStr)
	if convErr != nil || stake.BitLen() > maxAmountBits {
		return nil, fail(ErrExternalCallFailed, "stake_of reply out of range")
	}
	return stake, nil
}
