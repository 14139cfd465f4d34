package contract

import "polkapad_sale/sdk"

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// saleConfigKey locates the singleton Sale record.
func saleConfigKey() string {
	return string([]byte{kSaleConfig})
}

// registrationRoundKey locates the registration window record.
func registrationRoundKey() string {
	return string([]byte{kRegistrationRound})
}

// saleRoundKey locates the sale window record.
func saleRoundKey() string {
	return string([]byte{kSaleRound})
}

// registrantKey mixes round generation plus address bytes so replacing the
// round orphans every prior registration without a mass delete.
func registrantKey(generation uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kRegistrant)
	buf = packU64LE(generation, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// participantKey mirrors registrant keys under the sale-round prefix.
func participantKey(generation uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kParticipant)
	buf = packU64LE(generation, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}
