package contract

// Read-only views. Queries never mutate storage and never log; missing
// records come back as not_found failure replies.

// GetSaleToken replies with the configured sale-token ledger address.
func GetSaleToken(_ *string) *string {
	sale := mustLoadSale()
	w := eventReply("SaleToken")
	fieldAddress(w, "token", sale.Token)
	return finishReply(w)
}

// GetSaleOwner replies with the sale owner address.
func GetSaleOwner(_ *string) *string {
	sale := mustLoadSale()
	w := eventReply("SaleOwner")
	fieldAddress(w, "owner", sale.Owner)
	return finishReply(w)
}

// GetTotalSold replies with the running total of sold tokens.
func GetTotalSold(_ *string) *string {
	sale := mustLoadSale()
	w := eventReply("TotalSold")
	fieldAmount(w, "tokensSold", sale.TokensSold)
	return finishReply(w)
}

// GetTotalRaised replies with the running total of raised payment currency.
func GetTotalRaised(_ *string) *string {
	sale := mustLoadSale()
	w := eventReply("TotalRaised")
	fieldAmount(w, "tokensRaised", sale.TokensRaised)
	return finishReply(w)
}

// GetRoundTimes replies with both configured windows.
func GetRoundTimes(_ *string) *string {
	mustLoadSale()
	reg := loadRegistrationRound()
	saleRound := loadSaleRound()
	w := eventReply("RoundTimes")
	fieldUint64(w, "registrationStart", reg.Start)
	fieldUint64(w, "registrationEnd", reg.End)
	fieldUint64(w, "saleStart", saleRound.Start)
	fieldUint64(w, "saleEnd", saleRound.End)
	return finishReply(w)
}

// GetAllocationOf replies with a user's allocation cap in the live
// registration round. Payload: {"user":"0x.."}
func GetAllocationOf(payload *string) *string {
	user := decodeAddressArg(payload, "user")
	mustLoadSale()
	round := loadRegistrationRound()
	cap, registered := loadRegistrant(round.Generation, user)
	if !registered {
		return failureReply(failf(ErrNotFound, "user %s is not registered", user))
	}
	w := eventReply("AllocationOf")
	fieldAddress(w, "user", user)
	fieldAmount(w, "maxAllocation", cap)
	return finishReply(w)
}

// GetParticipationOf replies with a user's participation in the live sale
// round. Payload: {"user":"0x.."}
func GetParticipationOf(payload *string) *string {
	user := decodeAddressArg(payload, "user")
	mustLoadSale()
	round := loadSaleRound()
	p, found := loadParticipation(round.Generation, user)
	if !found {
		return failureReply(failf(ErrNotFound, "user %s did not participate", user))
	}
	w := eventReply("ParticipationOf")
	fieldAddress(w, "user", user)
	fieldAmount(w, "amountBought", p.AmountBought)
	fieldAmount(w, "amountPaid", p.AmountPaid)
	fieldUint64(w, "participatedAt", p.ParticipatedAt)
	w.RawString(`,"withdrawn":`)
	w.Bool(p.Withdrawn.closed())
	return finishReply(w)
}
