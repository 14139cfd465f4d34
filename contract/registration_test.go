package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"polkapad_sale/contract"
	"polkapad_sale/sdk"
)

func TestRegisterHappyPath(t *testing.T) {
	f := newFixture(t)
	f.openSale()

	out := f.register(aliceAddr)
	assert.Equal(t, aliceAddr.String(), out["user"])
	assert.Equal(t, feeDec, out["fee"])

	// the cap starts at zero until the admin grants one
	alloc := f.callOK(adminAddr, "0", tsRegistration, contract.GetAllocationOf,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))
	assert.Equal(t, "0", alloc["maxAllocation"])
}

func TestRegisterTwiceRejected(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.register(aliceAddr)
	f.callFail(contract.ErrAlreadyRegistered, aliceAddr, feeDec, tsRegistration, contract.RegisterOnSale, "")
}

func TestRegisterOutsideWindowRejected(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.callFail(contract.ErrWindowClosed, aliceAddr, feeDec, tsSale, contract.RegisterOnSale, "")
	f.callFail(contract.ErrWindowClosed, aliceAddr, feeDec, tsSetup, contract.RegisterOnSale, "")
}

func TestRegisterWrongFeeLeavesPoolUnchanged(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.callFail(contract.ErrInvalidConfiguration, aliceAddr, "999", tsRegistration, contract.RegisterOnSale, "")
	f.callFail(contract.ErrInvalidConfiguration, aliceAddr, "1001", tsRegistration, contract.RegisterOnSale, "")

	// fee pool is untouched, so the fee withdrawal after sale end finds nothing
	f.callFail(contract.ErrZeroAmount, adminAddr, "0", tsAfterSale, contract.WithdrawRegistrationFees, "")
}

func TestRegisterWithoutStakeRejected(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.callFail(contract.ErrInsufficientStake, testAddr(0x03), feeDec, tsRegistration, contract.RegisterOnSale, "")
}

func TestRegisterStakingLedgerDownRejected(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.staking.RejectCalls = true
	f.callFail(contract.ErrExternalCallFailed, aliceAddr, feeDec, tsRegistration, contract.RegisterOnSale, "")
}

func TestAllocationGrantRequiresAllUsersRegistered(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.register(aliceAddr)

	payload := fmt.Sprintf(`{"allocations":{%q:%q,%q:%q}}`, aliceAddr, boughtDec, bobAddr, boughtDec)
	f.callFail(contract.ErrNotFound, adminAddr, "0", tsRegistration, contract.SetMaxAllocationSizes, payload)

	// the rejection applied nothing, alice's cap is still zero
	alloc := f.callOK(adminAddr, "0", tsRegistration, contract.GetAllocationOf,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))
	assert.Equal(t, "0", alloc["maxAllocation"])
}

func TestAllocationGrantsAddUp(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.register(aliceAddr)
	out := f.callOK(adminAddr, "0", tsRegistration, contract.SetMaxAllocationSizes,
		fmt.Sprintf(`{"allocations":{%q:"100"}}`, aliceAddr))
	assert.Equal(t, "MaxAllocationSizeSet", out["event"])
	f.grantCap(aliceAddr, "25")

	alloc := f.callOK(adminAddr, "0", tsRegistration, contract.GetAllocationOf,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))
	assert.Equal(t, "125", alloc["maxAllocation"])
}

func TestRemoveRegisteredDropsUserWithoutRefund(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.register(aliceAddr)
	f.callOK(adminAddr, "0", tsRegistration, contract.RemoveRegistered,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))

	f.callFail(contract.ErrNotFound, adminAddr, "0", tsRegistration, contract.GetAllocationOf,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))
	assert.Empty(t, sdk.Host.TransfersTo(aliceAddr))

	// the user may register again inside the same window
	f.register(aliceAddr)
}

func TestRemoveRegisteredOutsideWindowRejected(t *testing.T) {
	f := newFixture(t)
	f.openSale()
	f.register(aliceAddr)
	f.callFail(contract.ErrWindowClosed, adminAddr, "0", tsSale, contract.RemoveRegistered,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))
}

func TestReplacedRegistrationWindowDiscardsRegistrations(t *testing.T) {
	f := newFixture(t)
	f.initContract()
	f.createSale()
	f.callOK(adminAddr, "0", tsSetup, contract.SetSaleTime,
		fmt.Sprintf(`{"start":%d,"end":%d}`, saleStart, saleEnd))
	f.callOK(adminAddr, "0", tsSetup, contract.SetRegistrationTime,
		fmt.Sprintf(`{"start":%d,"end":%d}`, regStart, regEnd))
	f.staking.SetStake(aliceAddr, amount(t, "1"))
	f.register(aliceAddr)

	// replacing the window resets the round, discarding alice's registration
	f.callOK(adminAddr, "0", tsSetup, contract.SetRegistrationTime,
		fmt.Sprintf(`{"start":%d,"end":%d}`, regStart, regEnd))
	f.callFail(contract.ErrNotFound, adminAddr, "0", tsRegistration, contract.GetAllocationOf,
		fmt.Sprintf(`{"user":%q}`, aliceAddr))

	// and she may register again in the new round
	f.register(aliceAddr)
}
