package contract

import (
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Persistence helpers. Every handler loads from host storage and saves back
// explicitly; there is no in-memory singleton, so a reload after a
// suspension point observes whatever interleaved handlers committed.

// saveSale stores the singleton sale record.
func saveSale(s *Sale) {
	sdk.StateSetObject(saleConfigKey(), string(encodeSale(s)))
}

// loadSale returns the sale record, or false before contract initialization.
func loadSale() (*Sale, bool) {
	ptr := sdk.StateGetObject(saleConfigKey())
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	s, err := decodeSale([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode sale record")
	}
	return s, true
}

// mustLoadSale aborts when the contract was never initialized. Dispatching
// any action before init is a deployment mistake, not a user error.
func mustLoadSale() *Sale {
	s, ok := loadSale()
	if !ok {
		sdk.Abort("contract not initialized")
	}
	return s
}

func saveRegistrationRound(r *RegistrationRound) {
	sdk.StateSetObject(registrationRoundKey(), string(encodeRound(r.Start, r.End, r.Generation)))
}

// loadRegistrationRound returns a zero round when none was configured yet;
// a zero window rejects every registration by the window check.
func loadRegistrationRound() *RegistrationRound {
	ptr := sdk.StateGetObject(registrationRoundKey())
	if ptr == nil || *ptr == "" {
		return &RegistrationRound{}
	}
	start, end, gen, err := decodeRound([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode registration round")
	}
	return &RegistrationRound{Start: start, End: end, Generation: gen}
}

func saveSaleRound(r *SaleRound) {
	sdk.StateSetObject(saleRoundKey(), string(encodeRound(r.Start, r.End, r.Generation)))
}

func loadSaleRound() *SaleRound {
	ptr := sdk.StateGetObject(saleRoundKey())
	if ptr == nil || *ptr == "" {
		return &SaleRound{}
	}
	start, end, gen, err := decodeRound([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode sale round")
	}
	return &SaleRound{Start: start, End: end, Generation: gen}
}

// saveRegistrant stores a user's allocation cap under the current generation.
func saveRegistrant(generation uint64, addr sdk.Address, cap *uint256.Int) {
	sdk.StateSetObject(registrantKey(generation, addr), string(encodeAllocation(cap)))
}

// loadRegistrant returns the user's allocation cap, or false if the user is
// not registered in this round generation.
func loadRegistrant(generation uint64, addr sdk.Address) (*uint256.Int, bool) {
	ptr := sdk.StateGetObject(registrantKey(generation, addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	cap, err := decodeAllocation([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode allocation record")
	}
	return cap, true
}

func deleteRegistrant(generation uint64, addr sdk.Address) {
	sdk.StateDeleteObject(registrantKey(generation, addr))
}

func saveParticipation(generation uint64, addr sdk.Address, p *Participation) {
	sdk.StateSetObject(participantKey(generation, addr), string(encodeParticipation(p)))
}

func loadParticipation(generation uint64, addr sdk.Address) (*Participation, bool) {
	ptr := sdk.StateGetObject(participantKey(generation, addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	p, err := decodeParticipation([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode participation record")
	}
	return p, true
}
