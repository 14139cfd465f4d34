//go:build wasm

package sdk

import "strconv"

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk value.transfer
func valueTransfer(to *string, amount *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("hello sale")
func Log(s string) {
	log(&s)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnvKey pulls a single env key (like tx.id) without parsing a full blob.
// Example payload: sdk.GetEnvKey("block.timestamp")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetEnv assembles the Env snapshot from individual host env keys.
func GetEnv() Env {
	env := Env{}
	str := func(key string) string {
		if p := getEnvKey(&key); p != nil {
			return *p
		}
		return ""
	}
	env.ContractId = str("contract.id")
	env.TxId = str("tx.id")
	env.BlockId = str("block.id")
	if h := str("block.height"); h != "" {
		env.BlockHeight, _ = strconv.ParseUint(h, 10, 64)
	}
	env.Timestamp = str("block.timestamp")
	env.Value = str("msg.value")
	env.Sender = Sender{Address: Address(str("msg.sender"))}
	return env
}

// ValueTransfer moves attached-currency funds from the contract to an
// account. It completes synchronously in the host; false means the host
// rejected the transfer (e.g. insufficient contract balance).
// Example payload: sdk.ValueTransfer(sdk.Address("0xab.."), "1000")
func ValueTransfer(to Address, amount string) bool {
	toStr := to.String()
	return valueTransfer(&toStr, &amount) != nil
}

// ContractCall sends a typed request to another actor and suspends the
// current handler until the reply arrives. While suspended, the runtime may
// deliver and fully process other messages to this contract. A nil return
// means the collaborator rejected the call.
// Example payload: sdk.ContractCall("0xtoken..", "decimals", "{}")
func ContractCall(contractId string, method string, payload string) *string {
	return contractCall(&contractId, &method, &payload)
}

// Abort stops execution immediately and surfaces the message to the chain.
// Example payload: sdk.Abort("corrupted state")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol.
// Example payload: sdk.Revert("bad input", "input_error")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(symbol + ": " + msg)
}
