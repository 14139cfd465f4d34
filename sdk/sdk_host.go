//go:build !wasm

package sdk

import "fmt"

// Non-wasm builds run the same sdk API against the MockHost so the contract
// code is identical across targets.

// Log records the line on the host and echoes it for local runs.
func Log(s string) {
	Host.LogLines = append(Host.LogLines, s)
}

func StateSetObject(key string, value string) {
	Host.State.Set(key, value)
}

func StateGetObject(key string) *string {
	return Host.State.Get(key)
}

func StateDeleteObject(key string) {
	Host.State.Delete(key)
}

// GetEnvKey serves individual env keys from the host snapshot.
func GetEnvKey(key string) *string {
	e := Host.Env
	switch key {
	case "contract.id":
		return &e.ContractId
	case "tx.id":
		return &e.TxId
	case "block.id":
		return &e.BlockId
	case "block.height":
		h := fmt.Sprintf("%d", e.BlockHeight)
		return &h
	case "block.timestamp":
		return &e.Timestamp
	case "msg.value":
		return &e.Value
	case "msg.sender":
		s := e.Sender.Address.String()
		return &s
	default:
		return nil
	}
}

func GetEnv() Env {
	return Host.Env
}

// ValueTransfer records the payout; false simulates host rejection.
func ValueTransfer(to Address, amount string) bool {
	if Host.FailValueTransfers {
		return false
	}
	Host.Transfers = append(Host.Transfers, ValueTransferRecord{To: to, Amount: amount})
	return true
}

// ContractCall dispatches to a registered collaborator. The OnCall hook runs
// while the caller is notionally suspended, which is where reentrancy tests
// inject interleaved handler invocations.
func ContractCall(contractId string, method string, payload string) *string {
	c, found := Host.Contracts[contractId]
	if !found {
		return nil
	}
	reply, ok := c.HandleCall(method, payload)
	if Host.OnCall != nil {
		hook := Host.OnCall
		Host.OnCall = nil
		saved := Host.Env
		hook(contractId, method)
		// the suspended handler resumes under its original message env
		Host.Env = saved
	}
	if !ok {
		return nil
	}
	return reply
}

// Abort mirrors the wasm trap with a plain panic so tests can assert on it.
func Abort(msg string) {
	panic("abort: " + msg)
}

// Revert mirrors the named host revert.
func Revert(msg string, symbol string) {
	panic(symbol + ": " + msg)
}
