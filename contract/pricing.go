package contract

import "github.com/holiman/uint256"

// All amount arithmetic lives in the u128 domain: inputs are validated to
// 128 bits and results clamp at 2^128-1 instead of wrapping or panicking.

var maxU128 = uint256.MustFromHex("0xffffffffffffffffffffffffffffffff")

// satAdd returns x+y clamped to the u128 maximum.
func satAdd(x, y *uint256.Int) *uint256.Int {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow || z.Gt(maxU128) {
		return maxU128.Clone()
	}
	return z
}

// satSub returns x-y, floored at zero.
func satSub(x, y *uint256.Int) *uint256.Int {
	if y.Gt(x) {
		return new(uint256.Int)
	}
	return new(uint256.Int).Sub(x, y)
}

// satMul returns x*y clamped to the u128 maximum.
func satMul(x, y *uint256.Int) *uint256.Int {
	z, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow || z.Gt(maxU128) {
		return maxU128.Clone()
	}
	return z
}

// pow10 returns 10^d clamped to the u128 maximum.
func pow10(d uint8) *uint256.Int {
	z := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := 0; i < int(d); i++ {
		z = satMul(z, ten)
		if z.Eq(maxU128) {
			break
		}
	}
	return z
}

// tokensForPayment converts a paid amount into a token amount:
// payment * 10^decimals / price, saturating multiplication and floor
// division. Decimals are fetched live from the token ledger at participation
// time, never cached, so the ledger owns the conversion scale.
func tokensForPayment(payment, price *uint256.Int, decimals uint8) *uint256.Int {
	scaled := satMul(payment, pow10(decimals))
	// price is validated non-zero at sale creation
	return scaled.Div(scaled, price)
}

// checkAllocation enforces the three participation bounds in order: the
// caller's registered cap, a non-zero purchase, and remaining inventory.
func checkAllocation(tokensToBuy, cap, toSell, sold *uint256.Int) *SaleError {
	if tokensToBuy.Gt(cap) {
		return fail(ErrAllocationExceeded, "allocation greater than your max allocation size")
	}
	if tokensToBuy.IsZero() {
		return fail(ErrZeroAmount, "impossible to buy zero amount of tokens")
	}
	if tokensToBuy.Gt(satSub(toSell, sold)) {
		return fail(ErrInsufficientInventory, "not enough tokens to sell")
	}
	return nil
}
