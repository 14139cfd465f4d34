package contract

import (
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// latch is a single-shot boolean guard: set flips it false→true at most
// once. Only the handler that set a latch may reset it, to back out of a
// step it committed and then had to abort.
type latch bool

// closed reports whether the latch has been set.
func (l latch) closed() bool { return bool(l) }

// set flips the latch; false means it was already set.
func (l *latch) set() bool {
	if bool(*l) {
		return false
	}
	*l = true
	return true
}

// reset reopens the latch.
func (l *latch) reset() { *l = false }

// Sale is the process-wide singleton sale state. It is created at contract
// initialization, mutated only by handler operations, and never destroyed.
// All amounts are u128 values; running totals saturate instead of wrapping.
type Sale struct {
	Admin   sdk.Address
	Owner   sdk.Address
	Token   sdk.Address
	Staking sdk.Address

	TokensToSell     *uint256.Int
	TokensSold       *uint256.Int
	TokensRaised     *uint256.Int
	TokenPriceInGear *uint256.Int

	RegistrationFeeGear *uint256.Int
	RegistrationFees    *uint256.Int

	TokensDeposited   latch
	EarningsWithdrawn latch
	LeftoverWithdrawn latch
	IsCreated         latch
	GateClosed        latch
}

// newSale returns a zero-valued sale with all amounts allocated.
func newSale() *Sale {
	return &Sale{
		TokensToSell:        new(uint256.Int),
		TokensSold:          new(uint256.Int),
		TokensRaised:        new(uint256.Int),
		TokenPriceInGear:    new(uint256.Int),
		RegistrationFeeGear: new(uint256.Int),
		RegistrationFees:    new(uint256.Int),
	}
}

// RegistrationRound is the time-boxed window in which users may register.
// Generation increments every time the round is replaced; per-user records
// are keyed by generation, so a replaced round implicitly discards them.
type RegistrationRound struct {
	Start      uint64
	End        uint64
	Generation uint64
}

// configured reports whether a registration window was ever set.
func (r *RegistrationRound) configured() bool {
	return r.Start != 0 && r.End != 0
}

// SaleRound is the time-boxed window in which registered users participate.
type SaleRound struct {
	Start      uint64
	End        uint64
	Generation uint64
}

// Participation is created once per user per sale round and is immutable
// afterward except for the withdrawal latch.
type Participation struct {
	AmountBought   *uint256.Int
	AmountPaid     *uint256.Int
	ParticipatedAt uint64
	Withdrawn      latch
}

// SaleParameters is the admin-supplied configuration for CreateSale.
type SaleParameters struct {
	Token               sdk.Address
	Owner               sdk.Address
	Staking             sdk.Address
	TokensToSell        *uint256.Int
	TokenPriceInGear    *uint256.Int
	RegistrationFeeGear *uint256.Int
}

// TimeWindow is a start/end pair in block-timestamp milliseconds.
type TimeWindow struct {
	Start uint64
	End   uint64
}

// AllocationGrant is one admin-granted cap increase for a registered user.
type AllocationGrant struct {
	User   sdk.Address
	Amount *uint256.Int
}
