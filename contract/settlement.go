package contract

import (
	"github.com/holiman/uint256"

	"polkapad_sale/sdk"
)

// Settlement: register, participate, and the withdrawal flows. This is the
// only place sale-wide totals change.
//
// Each flow follows one ordering: validate local preconditions, suspend for
// external data if needed, re-validate every mutable invariant against
// freshly loaded state, mutate and save, then suspend for the external
// transfer. While a handler is suspended the runtime can process other
// messages against this contract, so nothing checked before a suspension
// point is trusted after it. A transfer rejected after the mutation aborts
// the request and is surfaced as external_call_failed, never masked. The
// token payout flows reopen their latch on that branch so a transient
// ledger fault does not burn the claim; the deposit latch stays set because
// the gate close reads it.

// doRegister admits a caller into the live registration round. The staking
// query runs before any state is written; zero stake rejects registration.
func doRegister(caller sdk.Address, attached *uint256.Int, now uint64) *SaleError {
	sale := mustLoadSale()
	round := loadRegistrationRound()
	if err := checkRegistrationOpen(sale, round, caller, attached, now); err != nil {
		return err
	}

	// suspension point: staking ledger query. With no staking ledger
	// configured the gate is off and registration stays a single phase.
	if !sale.Staking.IsZero() {
		stake, err := stakingClient{staking: sale.Staking}.stakeOf(caller)
		if err != nil {
			return err
		}
		if stake.IsZero() {
			return fail(ErrInsufficientStake, "you need to stake PLPD to participate in this sale")
		}

		// re-validate against whatever landed while suspended
		sale = mustLoadSale()
		round = loadRegistrationRound()
		if err := checkRegistrationOpen(sale, round, caller, attached, now); err != nil {
			return err
		}
	}

	saveRegistrant(round.Generation, caller, new(uint256.Int))
	sale.RegistrationFees = satAdd(sale.RegistrationFees, attached)
	saveSale(sale)
	return nil
}

// checkRegistrationOpen holds the registration preconditions evaluated both
// before and after the staking suspension point.
func checkRegistrationOpen(sale *Sale, round *RegistrationRound, caller sdk.Address, attached *uint256.Int, now uint64) *SaleError {
	if !within(now, round.Start, round.End) {
		return fail(ErrWindowClosed, "registration round is over")
	}
	if !attached.Eq(sale.RegistrationFeeGear) {
		return fail(ErrInvalidConfiguration, "registration deposit doesn't match the required fee")
	}
	if _, registered := loadRegistrant(round.Generation, caller); registered {
		return fail(ErrAlreadyRegistered, "user already registered")
	}
	return nil
}

// doParticipate converts the attached payment into a token allocation. The
// token amount comes out of the decimals fetched live at this moment; the
// participation record is written only after that call returns. On success
// the fixed registration fee flows back to the caller out of the fee pool;
// the refunded fee is returned alongside the record.
func doParticipate(caller sdk.Address, paid *uint256.Int, now uint64) (*Participation, *uint256.Int, *SaleError) {
	sale := mustLoadSale()
	if err := checkParticipationOpen(sale, caller, now); err != nil {
		return nil, nil, err
	}

	// suspension point: live decimals query
	decimals, err := ftClient{token: sale.Token}.decimals()
	if err != nil {
		return nil, nil, err
	}

	// re-validate: registration, caps, inventory and the window can all
	// have moved while suspended
	sale = mustLoadSale()
	if err := checkParticipationOpen(sale, caller, now); err != nil {
		return nil, nil, err
	}
	regRound := loadRegistrationRound()
	cap, _ := loadRegistrant(regRound.Generation, caller)

	tokensToBuy := tokensForPayment(paid, sale.TokenPriceInGear, decimals)
	if err := checkAllocation(tokensToBuy, cap, sale.TokensToSell, sale.TokensSold); err != nil {
		return nil, nil, err
	}

	sale.TokensSold = satAdd(sale.TokensSold, tokensToBuy)
	sale.TokensRaised = satAdd(sale.TokensRaised, paid)
	sale.RegistrationFees = satSub(sale.RegistrationFees, sale.RegistrationFeeGear)
	saveSale(sale)

	saleRound := loadSaleRound()
	participation := &Participation{
		AmountBought:   tokensToBuy,
		AmountPaid:     paid,
		ParticipatedAt: now,
	}
	saveParticipation(saleRound.Generation, caller, participation)

	// refund the registration deposit; state above stays if this fails
	fee := sale.RegistrationFeeGear
	if !sdk.ValueTransfer(caller, fee.Dec()) {
		return nil, nil, fail(ErrExternalCallFailed, "registration fee refund rejected by host")
	}
	emitFeeRefunded(caller, fee)
	return participation, fee, nil
}

// checkParticipationOpen holds the participation preconditions evaluated on
// both sides of the decimals suspension point.
func checkParticipationOpen(sale *Sale, caller sdk.Address, now uint64) *SaleError {
	saleRound := loadSaleRound()
	if !within(now, saleRound.Start, saleRound.End) {
		return fail(ErrWindowClosed, "sale round is over")
	}
	regRound := loadRegistrationRound()
	if _, registered := loadRegistrant(regRound.Generation, caller); !registered {
		return fail(ErrNotFound, "user must be registered")
	}
	if _, participated := loadParticipation(saleRound.Generation, caller); participated {
		return fail(ErrAlreadyParticipated, "user already participated")
	}
	return nil
}

// doDepositTokens pulls the full sale inventory from the owner into contract
// custody via the token ledger.
func doDepositTokens(caller sdk.Address) (*uint256.Int, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireOwner(caller); err != nil {
		return nil, err
	}
	if err := sale.requireGateOpen(); err != nil {
		return nil, err
	}
	if err := sale.requireCreated(); err != nil {
		return nil, err
	}
	if !sale.TokensDeposited.set() {
		return nil, fail(ErrAlreadyWithdrawn, "tokens already deposited")
	}
	saveSale(sale)
	amount := sale.TokensToSell.Clone()

	// suspension point: the ledger pulls tokens from the owner. The latch is
	// already committed, so an interleaved deposit cannot pull twice; if the
	// ledger rejects this call the latch stays set and custody lags the
	// claim, surfaced here rather than masked.
	if err := (ftClient{token: sale.Token}).transferFrom(caller, contractAddress(), amount); err != nil {
		return nil, err
	}
	return amount, nil
}

// doWithdrawAllocation pays a participant their bought tokens after the sale
// ends, at most once.
func doWithdrawAllocation(caller sdk.Address, now uint64) (*uint256.Int, *SaleError) {
	sale := mustLoadSale()
	saleRound := loadSaleRound()
	if now < saleRound.End || saleRound.End == 0 {
		return nil, fail(ErrWindowClosed, "sale is not over yet")
	}
	participation, found := loadParticipation(saleRound.Generation, caller)
	if !found {
		return nil, fail(ErrNotFound, "user has to participate in the sale to withdraw funds")
	}
	if participation.AmountBought.IsZero() {
		return nil, fail(ErrZeroAmount, "there are no funds to withdraw")
	}
	if !participation.Withdrawn.set() {
		return nil, fail(ErrAlreadyWithdrawn, "allocation already withdrawn")
	}
	saveParticipation(saleRound.Generation, caller, participation)
	amount := participation.AmountBought.Clone()

	// suspension point: move tokens from contract custody to the caller.
	// The latch is committed first so an interleaved withdrawal cannot pay
	// twice. A rejected transfer paid nothing, so the latch is reopened on
	// a fresh record and the allocation stays claimable.
	if err := (ftClient{token: sale.Token}).transfer(caller, amount); err != nil {
		if p, ok := loadParticipation(saleRound.Generation, caller); ok {
			p.Withdrawn.reset()
			saveParticipation(saleRound.Generation, caller, p)
		}
		return nil, err
	}
	return amount, nil
}

// doWithdrawEarnings pays the owner the raised payment currency, once. The
// value transfer is a synchronous host op, so latching after it cannot race.
func doWithdrawEarnings(caller sdk.Address, now uint64) (*uint256.Int, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireOwner(caller); err != nil {
		return nil, err
	}
	saleRound := loadSaleRound()
	if now < saleRound.End || saleRound.End == 0 {
		return nil, fail(ErrWindowClosed, "sale is not over yet")
	}
	if sale.EarningsWithdrawn.closed() {
		return nil, fail(ErrAlreadyWithdrawn, "impossible to withdraw earnings twice")
	}
	if sale.TokensRaised.IsZero() {
		return nil, fail(ErrZeroAmount, "there are no earnings to withdraw")
	}
	amount := sale.TokensRaised.Clone()
	if !sdk.ValueTransfer(caller, amount.Dec()) {
		return nil, fail(ErrExternalCallFailed, "earnings payout rejected by host")
	}
	sale.EarningsWithdrawn.set()
	saveSale(sale)
	return amount, nil
}

// doWithdrawLeftover returns unsold inventory to the owner, once.
func doWithdrawLeftover(caller sdk.Address, now uint64) (*uint256.Int, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireOwner(caller); err != nil {
		return nil, err
	}
	saleRound := loadSaleRound()
	if now < saleRound.End || saleRound.End == 0 {
		return nil, fail(ErrWindowClosed, "sale is not over yet")
	}
	leftover := satSub(sale.TokensToSell, sale.TokensSold)
	if leftover.IsZero() {
		return nil, fail(ErrZeroAmount, "there are no tokens to withdraw")
	}
	if !sale.LeftoverWithdrawn.set() {
		return nil, fail(ErrAlreadyWithdrawn, "impossible to withdraw leftover twice")
	}
	saveSale(sale)

	// suspension point: move the remainder out of contract custody, latch
	// committed first. A rejection reopens the latch so the owner can retry.
	if err := (ftClient{token: sale.Token}).transfer(caller, leftover); err != nil {
		sale = mustLoadSale()
		sale.LeftoverWithdrawn.reset()
		saveSale(sale)
		return nil, err
	}
	return leftover, nil
}

// doWithdrawRegistrationFees pays the admin the fee pool and zeroes it.
func doWithdrawRegistrationFees(caller sdk.Address, now uint64) (*uint256.Int, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return nil, err
	}
	saleRound := loadSaleRound()
	if now < saleRound.End || saleRound.End == 0 {
		return nil, fail(ErrWindowClosed, "sale is not over yet")
	}
	if sale.RegistrationFees.IsZero() {
		return nil, fail(ErrZeroAmount, "there are no fees to withdraw")
	}
	amount := sale.RegistrationFees.Clone()
	if !sdk.ValueTransfer(caller, amount.Dec()) {
		return nil, fail(ErrExternalCallFailed, "fee payout rejected by host")
	}
	sale.RegistrationFees = new(uint256.Int)
	saveSale(sale)
	return amount, nil
}
