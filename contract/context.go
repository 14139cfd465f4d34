package contract

import (
	"strconv"
	"time"

	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx.id changes we refresh sdk.GetEnv() so subsequent helper calls (sender,
// timestamp, attached value) always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few
// lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current message sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress returns this contract's own actor id, used as the custody
// account in ledger transfers.
func contractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// nowMillis returns the block timestamp in milliseconds. All window
// comparisons run against this value; there is no timer.
func nowMillis() uint64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	sdk.Abort("block timestamp unavailable")
	return 0
}

// parseTimestamp accepts decimal milliseconds or iso-ish strings since the
// env flips formats sometimes.
func parseTimestamp(val string) (uint64, bool) {
	if v, err := strconv.ParseUint(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return uint64(t.UnixMilli()), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return uint64(t.UnixMilli()), true
	}
	return 0, false
}

// msgValue parses the native currency attached to the current message.
// Missing value means zero; a malformed value is a host fault.
func msgValue() *uint256.Int {
	raw := currentEnv().Value
	if raw == "" {
		return new(uint256.Int)
	}
	v, err := uint256.FromDecimal(raw)
	if err != nil || v.BitLen() > maxAmountBits {
		sdk.Abort("malformed msg.value")
	}
	return v
}

// strptr is a convenience helper for handler returns.
func strptr(s string) *string { return &s }
