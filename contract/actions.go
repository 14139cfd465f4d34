package contract

import "polkapad_sale/sdk"

// Action entrypoints. Each handler decodes its payload, captures the message
// facts (caller, attached value, timestamp) exactly once, runs the operation
// and renders a reply. Business rejections come back as failure replies; only
// malformed payloads revert.

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit stores the empty sale record with the admin and staking
// contract set. Payload (optional): {"admin":"0x..","staking":"0x.."};
// admin defaults to the caller. Must run before any other action.
func ContractInit(payload *string) *string {
	if _, initialized := loadSale(); initialized {
		sdk.Abort("contract already initialized")
	}
	admin, staking := decodeInitArgs(payload)
	if admin.IsZero() {
		admin = getSenderAddress()
	}
	sale := newSale()
	sale.Admin = admin
	sale.Staking = staking
	saveSale(sale)
	sdk.Log("init|adm:" + admin.String())

	w := eventReply("Initialized")
	fieldAddress(w, "admin", admin)
	return finishReply(w)
}

// -----------------------------------------------------------------------------
// Configuration (admin)
// -----------------------------------------------------------------------------

// CreateSale applies the sale parameters once.
// Payload: {"token","owner","staking","tokensToSell","tokenPriceInGear",
// "registrationFeeGear"} with amounts as decimal strings.
func CreateSale(payload *string) *string {
	params := decodeCreateSaleArgs(payload)
	sale, err := doCreateSale(getSenderAddress(), params)
	if err != nil {
		return failureReply(err)
	}
	emitSaleCreated(sale.Owner, sale.TokensToSell)

	w := eventReply("SaleCreated")
	fieldAddress(w, "owner", sale.Owner)
	fieldAmount(w, "tokensToSell", sale.TokensToSell)
	fieldAmount(w, "tokenPriceInGear", sale.TokenPriceInGear)
	fieldAmount(w, "registrationFeeGear", sale.RegistrationFeeGear)
	return finishReply(w)
}

// SetSaleToken points the sale at its token ledger.
// Payload: {"token":"0x.."}
func SetSaleToken(payload *string) *string {
	token := decodeAddressArg(payload, "token")
	if err := doSetSaleToken(getSenderAddress(), token); err != nil {
		return failureReply(err)
	}
	emitSaleTokenSet(token)

	w := eventReply("SaleTokenSet")
	fieldAddress(w, "token", token)
	return finishReply(w)
}

// SetSaleTime configures or replaces the sale window, resetting all prior
// participations. Payload: {"start":ms,"end":ms}
func SetSaleTime(payload *string) *string {
	win := decodeTimeWindowArgs(payload, "sale window")
	round, err := doSetSaleTime(getSenderAddress(), win, nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitSaleTimeSet(round.Start, round.End)

	w := eventReply("SaleTimeSet")
	fieldUint64(w, "start", round.Start)
	fieldUint64(w, "end", round.End)
	return finishReply(w)
}

// SetRegistrationTime configures or replaces the registration window,
// resetting all prior registrations. Payload: {"start":ms,"end":ms}
func SetRegistrationTime(payload *string) *string {
	win := decodeTimeWindowArgs(payload, "registration window")
	round, err := doSetRegistrationTime(getSenderAddress(), win, nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitRegistrationTimeSet(round.Start, round.End, round.Generation)

	w := eventReply("RegistrationTimeSet")
	fieldUint64(w, "start", round.Start)
	fieldUint64(w, "end", round.End)
	return finishReply(w)
}

// SetMaxAllocationSizes additively raises per-user allocation caps; every
// listed user must be registered or nothing applies.
// Payload: {"allocations":{"0x..":"amount",..}}
func SetMaxAllocationSizes(payload *string) *string {
	grants := decodeAllocationArgs(payload)
	if err := doGrantAllocations(getSenderAddress(), grants); err != nil {
		return failureReply(err)
	}

	w := eventReply("MaxAllocationSizeSet")
	fieldUint64(w, "count", uint64(len(grants)))
	return finishReply(w)
}

// RemoveRegistered drops a user from the live registration round. The paid
// fee stays in the pool. Payload: {"user":"0x.."}
func RemoveRegistered(payload *string) *string {
	user := decodeAddressArg(payload, "user")
	if err := doRemoveRegistered(getSenderAddress(), user, nowMillis()); err != nil {
		return failureReply(err)
	}
	emitRegisteredRemoved(user)

	w := eventReply("RegisteredRemoved")
	fieldAddress(w, "user", user)
	return finishReply(w)
}

// CloseGate permanently freezes the sale configuration.
func CloseGate(_ *string) *string {
	now := nowMillis()
	if err := doCloseGate(getSenderAddress()); err != nil {
		return failureReply(err)
	}
	emitGateClosed(now)

	w := eventReply("GateClosed")
	fieldUint64(w, "at", now)
	return finishReply(w)
}

// -----------------------------------------------------------------------------
// Sale flows
// -----------------------------------------------------------------------------

// RegisterOnSale registers the caller for the live registration round. The
// attached value must equal the registration fee exactly and the caller must
// hold a non-zero stake in the staking contract.
func RegisterOnSale(_ *string) *string {
	caller := getSenderAddress()
	attached := msgValue()
	if err := doRegister(caller, attached, nowMillis()); err != nil {
		return failureReply(err)
	}
	emitUserRegistered(caller, attached)

	w := eventReply("UserRegistered")
	fieldAddress(w, "user", caller)
	fieldAmount(w, "fee", attached)
	return finishReply(w)
}

// Participate converts the attached payment into a token allocation for the
// live sale round and refunds the caller's registration fee. The typed
// success event is the refund, carrying the purchase alongside it.
func Participate(_ *string) *string {
	caller := getSenderAddress()
	paid := msgValue()
	participation, fee, err := doParticipate(caller, paid, nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitSaleParticipated(caller, participation.AmountBought, participation.AmountPaid)

	w := eventReply("RegistrationGEARRefunded")
	fieldAddress(w, "user", caller)
	fieldAmount(w, "fee", fee)
	fieldAmount(w, "amountBought", participation.AmountBought)
	fieldAmount(w, "amountPaid", participation.AmountPaid)
	return finishReply(w)
}

// DepositTokens pulls the full sale inventory from the owner into contract
// custody. Owner only; requires a prior allowance on the token ledger.
func DepositTokens(_ *string) *string {
	amount, err := doDepositTokens(getSenderAddress())
	if err != nil {
		return failureReply(err)
	}
	emitTokensDeposited(amount)

	w := eventReply("TokensDeposited")
	fieldAmount(w, "amount", amount)
	return finishReply(w)
}

// -----------------------------------------------------------------------------
// Withdrawals
// -----------------------------------------------------------------------------

// WithdrawAllocation pays the caller their bought tokens after the sale ends.
func WithdrawAllocation(_ *string) *string {
	caller := getSenderAddress()
	amount, err := doWithdrawAllocation(caller, nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitAllocationWithdrawn(caller, amount)

	w := eventReply("AllocationWithdrawn")
	fieldAddress(w, "user", caller)
	fieldAmount(w, "amount", amount)
	return finishReply(w)
}

// WithdrawEarnings pays the owner the raised payment currency, once.
func WithdrawEarnings(_ *string) *string {
	amount, err := doWithdrawEarnings(getSenderAddress(), nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitEarningsWithdrawn(amount)

	w := eventReply("EarningsWithdrawn")
	fieldAmount(w, "amount", amount)
	return finishReply(w)
}

// WithdrawLeftover returns unsold inventory to the owner, once.
func WithdrawLeftover(_ *string) *string {
	amount, err := doWithdrawLeftover(getSenderAddress(), nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitLeftoverWithdrawn(amount)

	w := eventReply("LeftoverWithdrawn")
	fieldAmount(w, "amount", amount)
	return finishReply(w)
}

// WithdrawRegistrationFees pays the admin the forfeited fee pool, zeroing it.
func WithdrawRegistrationFees(_ *string) *string {
	amount, err := doWithdrawRegistrationFees(getSenderAddress(), nowMillis())
	if err != nil {
		return failureReply(err)
	}
	emitRegistrationFeesWithdrawn(amount)

	w := eventReply("RegistrationFeeWithdrawn")
	fieldAmount(w, "amount", amount)
	return finishReply(w)
}
