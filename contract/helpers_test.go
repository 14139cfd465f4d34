package contract_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"polkapad_sale/contract"
	"polkapad_sale/sdk"
)

// Standard scenario numbers: price 5, 18 decimals, fee 1000. A payment of
// 5*10^18 buys exactly 10^36 tokens; the sale holds twice that, so one full
// participation leaves an equal leftover.
const (
	priceDec        = "5"
	feeDec          = "1000"
	boughtDec       = "1000000000000000000000000000000000000" // 10^36
	paymentDec      = "5000000000000000000"                   // 5*10^18
	tokensToSellDec = "2000000000000000000000000000000000000" // 2*10^36

	tsSetup        = "1000000"
	tsRegistration = "2500000"
	tsSale         = "5000000"
	tsAfterSale    = "9000001"

	regStart  = 2_000_000
	regEnd    = 3_000_000
	saleStart = 4_000_000
	saleEnd   = 9_000_000
)

var (
	adminAddr   = testAddr(0xA1)
	ownerAddr   = testAddr(0xB1)
	aliceAddr   = testAddr(0x01)
	bobAddr     = testAddr(0x02)
	tokenAddr   = testAddr(0xF1)
	stakingAddr = testAddr(0xF2)
	selfAddr    = testAddr(0xEE)
)

// testAddr builds a well-formed address with the tag in the last byte.
func testAddr(tag byte) sdk.Address {
	return sdk.Address(fmt.Sprintf("0x%062x%02x", 0, tag))
}

type fixture struct {
	t       *testing.T
	token   *contract.MockFungibleLedger
	staking *contract.MockStakingLedger
}

// newFixture resets the mock host and installs both collaborator ledgers.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	sdk.Host.Reset()
	sdk.Host.Env.ContractId = selfAddr.String()
	f := &fixture{
		t:       t,
		token:   contract.NewMockFungibleLedger(18),
		staking: contract.NewMockStakingLedger(),
	}
	sdk.Host.RegisterContract(tokenAddr, f.token)
	sdk.Host.RegisterContract(stakingAddr, f.staking)
	return f
}

// call runs one handler under the given message env and decodes the reply.
func (f *fixture) call(sender sdk.Address, value, ts string, handler func(*string) *string, payload string) map[string]any {
	f.t.Helper()
	sdk.Host.SetTimestamp(ts)
	sdk.Host.SetValue(value)
	sdk.Host.SetSender(sender)
	var p *string
	if payload != "" {
		p = &payload
	}
	reply := handler(p)
	require.NotNil(f.t, reply)
	var out map[string]any
	require.NoError(f.t, json.Unmarshal([]byte(*reply), &out))
	return out
}

// callOK asserts the handler succeeded and returns the reply.
func (f *fixture) callOK(sender sdk.Address, value, ts string, handler func(*string) *string, payload string) map[string]any {
	f.t.Helper()
	out := f.call(sender, value, ts, handler, payload)
	require.Equal(f.t, true, out["ok"], "expected success, got %v", out)
	return out
}

// callFail asserts the handler rejected the request with the given kind.
func (f *fixture) callFail(kind contract.ErrKind, sender sdk.Address, value, ts string, handler func(*string) *string, payload string) map[string]any {
	f.t.Helper()
	out := f.call(sender, value, ts, handler, payload)
	require.Equal(f.t, false, out["ok"], "expected failure, got %v", out)
	require.Equal(f.t, string(kind), out["error"], "wrong failure kind: %v", out)
	return out
}

// initContract runs contract_init with the standard admin and staking ledger.
func (f *fixture) initContract() {
	f.t.Helper()
	payload := fmt.Sprintf(`{"staking":%q}`, stakingAddr)
	f.callOK(adminAddr, "0", tsSetup, contract.ContractInit, payload)
}

// createSale runs the standard CreateSale on an initialized contract.
func (f *fixture) createSale() {
	f.t.Helper()
	payload := fmt.Sprintf(
		`{"token":%q,"owner":%q,"tokensToSell":%q,"tokenPriceInGear":%q,"registrationFeeGear":%q}`,
		tokenAddr, ownerAddr, tokensToSellDec, priceDec, feeDec)
	f.callOK(adminAddr, "0", tsSetup, contract.CreateSale, payload)
}

// openSale drives the full setup: init, create, windows, deposit, gate,
// stakes for alice and bob.
func (f *fixture) openSale() {
	f.t.Helper()
	f.initContract()
	f.createSale()
	f.callOK(adminAddr, "0", tsSetup, contract.SetSaleTime,
		fmt.Sprintf(`{"start":%d,"end":%d}`, saleStart, saleEnd))
	f.callOK(adminAddr, "0", tsSetup, contract.SetRegistrationTime,
		fmt.Sprintf(`{"start":%d,"end":%d}`, regStart, regEnd))
	f.token.Fund(ownerAddr, amount(f.t, tokensToSellDec))
	f.callOK(ownerAddr, "0", tsSetup, contract.DepositTokens, "")
	f.callOK(adminAddr, "0", tsSetup, contract.CloseGate, "")
	f.staking.SetStake(aliceAddr, uint256.NewInt(1))
	f.staking.SetStake(bobAddr, uint256.NewInt(1))
}

// register runs RegisterOnSale for the user with the exact fee attached.
func (f *fixture) register(user sdk.Address) map[string]any {
	f.t.Helper()
	return f.callOK(user, feeDec, tsRegistration, contract.RegisterOnSale, "")
}

// grantCap raises the user's allocation cap.
func (f *fixture) grantCap(user sdk.Address, cap string) {
	f.t.Helper()
	payload := fmt.Sprintf(`{"allocations":{%q:%q}}`, user, cap)
	f.callOK(adminAddr, "0", tsRegistration, contract.SetMaxAllocationSizes, payload)
}

// participate runs the standard participation for the user.
func (f *fixture) participate(user sdk.Address) map[string]any {
	f.t.Helper()
	return f.callOK(user, paymentDec, tsSale, contract.Participate, "")
}

func amount(t *testing.T, s string) *uint256.Int {
	t.Helper()
	v, err := uint256.FromDecimal(s)
	require.NoError(t, err)
	return v
}

// totalSold reads the running sold total through the query surface.
func (f *fixture) totalSold() string {
	f.t.Helper()
	out := f.callOK(adminAddr, "0", tsSale, contract.GetTotalSold, "")
	return out["tokensSold"].(string)
}
