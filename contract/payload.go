package contract

import (
	"sort"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Action payloads arrive as JSON and are decoded with hand-rolled tinyjson
// lexers; a malformed payload is not a user-recoverable condition, so decode
// failures revert instead of replying.

// requirePayload unwraps the raw payload pointer or reverts.
func requirePayload(payload *string, what string) string {
	if payload == nil || *payload == "" {
		sdk.Revert(what+" payload missing", "input_error")
	}
	return *payload
}

// amountField parses a decimal u128 rendered as a JSON string.
func amountField(l *jlexer.Lexer, name string) *uint256.Int {
	raw := l.String()
	if l.Error() != nil {
		return new(uint256.Int)
	}
	v, err := uint256.FromDecimal(raw)
	if err != nil || v.BitLen() > maxAmountBits {
		sdk.Revert("invalid "+name+" amount", "input_error")
	}
	return v
}

// decodeCreateSaleArgs unpacks the CreateSale parameter object.
func decodeCreateSaleArgs(payload *string) *SaleParameters {
	raw := requirePayload(payload, "sale parameters")
	params := &SaleParameters{
		TokensToSell:        new(uint256.Int),
		TokenPriceInGear:    new(uint256.Int),
		RegistrationFeeGear: new(uint256.Int),
	}
	l := jlexer.Lexer{Data: []byte(raw)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "token":
			params.Token = sdk.Address(l.String())
		case "owner":
			params.Owner = sdk.Address(l.String())
		case "staking":
			params.Staking = sdk.Address(l.String())
		case "tokensToSell":
			params.TokensToSell = amountField(&l, "tokensToSell")
		case "tokenPriceInGear":
			params.TokenPriceInGear = amountField(&l, "tokenPriceInGear")
		case "registrationFeeGear":
			params.RegistrationFeeGear = amountField(&l, "registrationFeeGear")
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil {
		sdk.Revert("invalid sale parameters payload", "input_error")
	}
	return params
}

// decodeInitArgs unpacks the optional init object {"admin":..,"staking":..}.
// A nil payload is fine; missing fields stay zero.
func decodeInitArgs(payload *string) (admin, staking sdk.Address) {
	if payload == nil || *payload == "" {
		return "", ""
	}
	l := jlexer.Lexer{Data: []byte(*payload)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "admin":
			admin = sdk.Address(l.String())
		case "staking":
			staking = sdk.Address(l.String())
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil {
		sdk.Revert("invalid init payload", "input_error")
	}
	return admin, staking
}

// decodeTimeWindowArgs expects {"start":ms,"end":ms}.
func decodeTimeWindowArgs(payload *string, what string) TimeWindow {
	raw := requirePayload(payload, what)
	var win TimeWindow
	l := jlexer.Lexer{Data: []byte(raw)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "start":
			win.Start = l.Uint64()
		case "end":
			win.End = l.Uint64()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil {
		sdk.Revert("invalid "+what+" payload", "input_error")
	}
	return win
}

// decodeAddressArg expects {"<field>":"0x.."}.
func decodeAddressArg(payload *string, field string) sdk.Address {
	raw := requirePayload(payload, field)
	var addr sdk.Address
	l := jlexer.Lexer{Data: []byte(raw)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if key == field {
			addr = sdk.Address(l.String())
		} else {
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil || !addr.IsValid() {
		sdk.Revert("invalid "+field+" payload", "input_error")
	}
	return addr
}

// decodeAllocationArgs expects {"allocations":{"0x..":"amount",..}} and
// returns the grants sorted by address so replayed requests apply (and log)
// deterministically.
func decodeAllocationArgs(payload *string) []AllocationGrant {
	raw := requirePayload(payload, "allocations")
	var grants []AllocationGrant
	l := jlexer.Lexer{Data: []byte(raw)}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if key == "allocations" {
			l.Delim('{')
			for !l.IsDelim('}') {
				user := l.UnsafeFieldName(false)
				l.WantColon()
				amount := amountField(&l, "allocation")
				grants = append(grants, AllocationGrant{User: sdk.Address(user), Amount: amount})
				l.WantComma()
			}
			l.Delim('}')
		} else {
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if l.Error() != nil || len(grants) == 0 {
		sdk.Revert("invalid allocations payload", "input_error")
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].User < grants[j].User })
	return grants
}

// -----------------------------------------------------------------------------
// Replies
// -----------------------------------------------------------------------------

// failureReply renders a rejected request: {"ok":false,"error":kind,...}.
// finishReply closes the object.
func failureReply(err *SaleError) *string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"ok":false,"error":`)
	w.String(string(err.Kind))
	w.RawString(`,"details":`)
	w.String(err.Msg)
	return finishReply(&w)
}

// eventReply opens a success reply carrying the typed event name; the caller
// appends event fields with the field helpers and closes with finishReply.
func eventReply(event string) *jwriter.Writer {
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"ok":true,"event":`)
	w.String(event)
	return w
}

func fieldString(w *jwriter.Writer, name, value string) {
	w.RawString(`,"` + name + `":`)
	w.String(value)
}

func fieldUint64(w *jwriter.Writer, name string, value uint64) {
	w.RawString(`,"` + name + `":`)
	w.Uint64(value)
}

func fieldAmount(w *jwriter.Writer, name string, value *uint256.Int) {
	fieldString(w, name, value.Dec())
}

func fieldAddress(w *jwriter.Writer, name string, value sdk.Address) {
	fieldString(w, name, value.String())
}

// finishReply closes the JSON object and renders the reply string.
func finishReply(w *jwriter.Writer) *string {
	w.RawByte('}')
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("failed to build reply")
	}
	return strptr(string(data))
}
