package contract

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleCodecRoundTrip(t *testing.T) {
	s := newSale()
	s.Admin = "0xaa"
	s.Owner = "0xbb"
	s.Token = "0xcc"
	s.Staking = "0xdd"
	s.TokensToSell = dec(t, "340282366920938463463374607431768211455") // u128 max
	s.TokensSold = uint256.NewInt(42)
	s.TokenPriceInGear = uint256.NewInt(5)
	s.RegistrationFeeGear = uint256.NewInt(1000)
	s.RegistrationFees = uint256.NewInt(3000)
	s.IsCreated.set()
	s.TokensDeposited.set()

	got, err := decodeSale(encodeSale(s))
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestParticipationCodecRoundTrip(t *testing.T) {
	p := &Participation{
		AmountBought:   dec(t, "1000000000000000000000000000000000000"),
		AmountPaid:     dec(t, "5000000000000000000"),
		ParticipatedAt: 1234567890,
	}
	p.Withdrawn.set()

	got, err := decodeParticipation(encodeParticipation(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRoundCodecRoundTrip(t *testing.T) {
	start, end, gen, err := decodeRound(encodeRound(100, 200, 7))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), start)
	assert.Equal(t, uint64(200), end)
	assert.Equal(t, uint64(7), gen)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	data := encodeAllocation(uint256.NewInt(9))
	data[0] = 99
	_, err := decodeAllocation(data)
	assert.Error(t, err)
}

func TestDecodeRejectsTruncatedRecord(t *testing.T) {
	data := encodeSale(newSale())
	_, err := decodeSale(data[:len(data)-3])
	assert.Error(t, err)
}
