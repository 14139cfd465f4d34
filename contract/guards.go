package contract

import "polkapad_sale/sdk"

// Access control guards: pure predicates over current state plus the caller
// identity carried with the inbound message.

// requireAdmin rejects callers other than the contract admin.
func (s *Sale) requireAdmin(caller sdk.Address) *SaleError {
	if s.Admin != caller {
		return fail(ErrUnauthorized, "allows only admin address")
	}
	return nil
}

// requireOwner rejects callers other than the sale owner.
func (s *Sale) requireOwner(caller sdk.Address) *SaleError {
	if s.Owner != caller {
		return fail(ErrUnauthorized, "allows only sale owner address")
	}
	return nil
}

// requireGateOpen rejects configuration changes once the gate latch is set.
func (s *Sale) requireGateOpen() *SaleError {
	if s.GateClosed.closed() {
		return fail(ErrAlreadyWithdrawn, "gate is closed")
	}
	return nil
}

// requireCreated rejects operations that need a configured sale.
func (s *Sale) requireCreated() *SaleError {
	if !s.IsCreated.closed() {
		return fail(ErrInvalidConfiguration, "sale is not created")
	}
	return nil
}

// within reports whether now falls inside the inclusive [start, end] window.
// A zero window (never configured) contains nothing.
func within(now, start, end uint64) bool {
	if start == 0 && end == 0 {
		return false
	}
	return now >= start && now <= end
}
