package contract

import (
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Round registry: owns the two time-boxed rounds and their per-user records.
// Replacing a round bumps its generation, which discards every prior
// per-user entry for that round (reset, not merge).

// doSetSaleTime configures or replaces the sale window.
func doSetSaleTime(caller sdk.Address, win TimeWindow, now uint64) (*SaleRound, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := sale.requireGateOpen(); err != nil {
		return nil, err
	}
	if err := sale.requireCreated(); err != nil {
		return nil, err
	}
	if win.Start < now || win.Start >= win.End {
		return nil, fail(ErrInvalidConfiguration, "sale start date must be in the future and before its end date")
	}
	// a replacement may not shrink the sale below a configured registration
	// window; registration must always end strictly before the sale does
	if reg := loadRegistrationRound(); reg.configured() && win.End <= reg.End {
		return nil, fail(ErrInvalidConfiguration, "sale end date must be later than the registration end date")
	}
	round := loadSaleRound()
	round.Start = win.Start
	round.End = win.End
	round.Generation++
	saveSaleRound(round)
	return round, nil
}

// doSetRegistrationTime configures or replaces the registration window. The
// sale window must already be configured and end after registration does.
func doSetRegistrationTime(caller sdk.Address, win TimeWindow, now uint64) (*RegistrationRound, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := sale.requireGateOpen(); err != nil {
		return nil, err
	}
	if err := sale.requireCreated(); err != nil {
		return nil, err
	}
	saleRound := loadSaleRound()
	if saleRound.End <= win.End {
		return nil, fail(ErrInvalidConfiguration, "registration end date must be earlier than the sale end date")
	}
	if win.Start < now || win.Start >= win.End {
		return nil, fail(ErrInvalidConfiguration, "registration start date must be in the future and before its end date")
	}
	round := loadRegistrationRound()
	round.Start = win.Start
	round.End = win.End
	round.Generation++
	saveRegistrationRound(round)
	return round, nil
}

// doGrantAllocations additively raises allocation caps for registered users.
// The whole request is validated before any cap changes, so a single
// unregistered user rejects it without partial application.
func doGrantAllocations(caller sdk.Address, grants []AllocationGrant) *SaleError {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return err
	}
	round := loadRegistrationRound()
	caps := make([]*uint256.Int, len(grants))
	for i, g := range grants {
		cap, registered := loadRegistrant(round.Generation, g.User)
		if !registered {
			return failf(ErrNotFound, "user %s is not registered", g.User)
		}
		caps[i] = cap
	}
	for i, g := range grants {
		saveRegistrant(round.Generation, g.User, satAdd(caps[i], g.Amount))
		emitMaxAllocationSizeSet(g.User, g.Amount)
	}
	return nil
}

// doRemoveRegistered drops a user from the live registration round. The paid
// registration fee stays in the pool; there is no refund path for removals.
func doRemoveRegistered(caller sdk.Address, user sdk.Address, now uint64) *SaleError {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return err
	}
	round := loadRegistrationRound()
	if !within(now, round.Start, round.End) {
		return fail(ErrWindowClosed, "registration round is over")
	}
	if _, registered := loadRegistrant(round.Generation, user); !registered {
		return failf(ErrNotFound, "user %s is not registered", user)
	}
	deleteRegistrant(round.Generation, user)
	return nil
}
